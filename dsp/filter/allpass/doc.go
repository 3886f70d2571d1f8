// Package allpass provides Schroeder all-pass diffusers over fixed-capacity
// delay lines.
//
// Every stage computes
//
//	v[n] = x[n] + g*v[n-D]
//	y[n] = decay * (v[n-D] - g*v[n])
//
// which has a flat magnitude response when decay is 1. Inside a feedback
// loop decay carries the stage's share of the reverb time.
//
// [Allpass] is the plain stage, [Modulated] reads its tap at a fractional,
// externally driven position, and [Allpass2] / [Allpass3] cascade two and
// three stages (the first stage of [Allpass3] is modulated).
package allpass

// Package biquad provides the second-order IIR section used throughout the
// reverb: oversampling anti-alias filters, early-reflection all-passes and
// the output low-pass.
//
// A [Section] runs Direct Form II Transposed on [Coefficients]. Coefficients
// come from dsp/filter/design. [Chain] cascades a fixed number of sections.
package biquad

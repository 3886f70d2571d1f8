// Package spectrum evaluates responses at individual frequencies.
//
// It complements the FFT-based measure/ir.MagnitudeResponse with Goertzel
// filters for the few octave-band centres a reverb report needs.
package spectrum

// Package resample provides the integer oversampler that wraps the reverb's
// late network.
//
// [Oversampler.Up] zero-stuffs one base-rate sample into factor internal
// samples and removes the images with a fourth-order Butterworth low-pass.
// [Oversampler.Down] filters factor internal samples with a matching
// low-pass and keeps the last one. With factor 1 both are pass-throughs.
package resample

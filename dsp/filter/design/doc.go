// Package design computes biquad coefficients for the reverb's second-order
// filters.
//
// Designers follow the RBJ cookbook. Each comes in a Q form and a bandwidth
// form (bandwidth in octaves). Frequencies are clamped into the open band
// (0, Nyquist) instead of being rejected, so a cutoff above Nyquist degrades
// to a nearly transparent filter rather than to silence.
package design

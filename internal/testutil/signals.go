package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at pos. An out-of-range pos yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// ExponentialDecay returns a unit-peak envelope that falls 60 dB in rt60
// seconds.
func ExponentialDecay(sampleRate, rt60 float64, length int) []float64 {
	out := make([]float64, length)
	k := -math.Log(1000) / (sampleRate * rt60)

	for i := range out {
		out[i] = math.Exp(k * float64(i))
	}

	return out
}

// Interleave32 packs two channels into one float32 frame, L first.
// The shorter channel bounds the frame length.
func Interleave32(l, r []float64) []float32 {
	n := min(len(l), len(r))
	out := make([]float32, 2*n)

	for i := range n {
		out[2*i] = float32(l[i])
		out[2*i+1] = float32(r[i])
	}

	return out
}

// Deinterleave32 splits an interleaved stereo frame. A trailing odd sample
// is dropped.
func Deinterleave32(frame []float32) (l, r []float64) {
	n := len(frame) / 2
	l = make([]float64, n)
	r = make([]float64, n)

	for i := range n {
		l[i] = float64(frame[2*i])
		r[i] = float64(frame[2*i+1])
	}

	return l, r
}

package design

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
)

const (
	defaultQ = 1 / math.Sqrt2

	// Cutoffs are kept this far below Nyquist.
	maxNyquistFraction = 0.499
	minFrequency       = 1e-3

	// Bandwidth designs never go below this Q. Near Nyquist the octave
	// mapping otherwise grows without bound.
	minBandwidthQ = 0.05
)

// Lowpass designs a second-order low-pass at freq with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	return lowpass(w0, math.Sin(w0)/(2*normalizedQ(q)))
}

// LowpassBW designs a second-order low-pass whose resonance is expressed as
// a bandwidth in octaves.
func LowpassBW(freq, bandwidth, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	return lowpass(w0, bandwidthAlpha(w0, bandwidth))
}

// Allpass designs a second-order all-pass centred at freq.
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	return allpass(w0, math.Sin(w0)/(2*normalizedQ(q)))
}

// AllpassBW designs a second-order all-pass with a bandwidth in octaves.
func AllpassBW(freq, bandwidth, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	return allpass(w0, bandwidthAlpha(w0, bandwidth))
}

// ClampFrequency limits freq to the usable band of sampleRate.
func ClampFrequency(freq, sampleRate float64) float64 {
	hi := maxNyquistFraction * sampleRate
	if math.IsNaN(freq) || freq < minFrequency {
		return minFrequency
	}

	if freq > hi {
		return hi
	}

	return freq
}

func lowpass(w0, alpha float64) biquad.Coefficients {
	cw := math.Cos(w0)

	b1 := 1 - cw
	b0 := b1 / 2

	return normalizeBiquad(b0, b1, b0, 1+alpha, -2*cw, 1-alpha)
}

func allpass(w0, alpha float64) biquad.Coefficients {
	cw := math.Cos(w0)

	return normalizeBiquad(1-alpha, -2*cw, 1+alpha, 1+alpha, -2*cw, 1-alpha)
}

// bandwidthAlpha converts an octave bandwidth to the RBJ alpha term:
//
//	alpha = sin(w0) * sinh(ln(2)/2 * bw * w0/sin(w0))
//
// capped at the alpha of minBandwidthQ.
func bandwidthAlpha(w0, bandwidth float64) float64 {
	if bandwidth <= 0 || math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return math.Sin(w0) / (2 * defaultQ)
	}

	sw := math.Sin(w0)

	return math.Min(sw*math.Sinh(math.Ln2/2*bandwidth*w0/sw), sw/(2*minBandwidthQ))
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	return 2 * math.Pi * ClampFrequency(freq, sampleRate) / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

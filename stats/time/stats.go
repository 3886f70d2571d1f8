// Package time provides level statistics of time-domain signals, used to
// report what a render produced and to check output bounds.
package time

import "math"

// Stats summarises a block of samples. dB fields are relative to full
// scale (1.0) and -Inf for silence.
type Stats struct {
	Length        int
	DC            float64
	RMS           float64
	RMSdB         float64
	Peak          float64 // largest magnitude
	PeakPos       int
	PeakdB        float64
	CrestFactor   float64 // Peak / RMS, 0 for silence
	ZeroCrossings int
	NonFinite     int // NaN and Inf samples, excluded from every other figure
}

func ampTodB(v float64) float64 {
	v = math.Abs(v)
	if v == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

// Calculate computes Stats in one pass.
func Calculate(signal []float64) Stats {
	var s StreamingStats
	s.Update(signal)

	return s.Result()
}

// RMS returns the root mean square of signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum float64
	for _, v := range signal {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(signal)))
}

// DC returns the mean of signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum float64
	for _, v := range signal {
		sum += v
	}

	return sum / float64(len(signal))
}

// Peak returns the largest magnitude in signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, v := range signal {
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}

// CrestFactor returns Peak/RMS, or 0 for silence.
func CrestFactor(signal []float64) float64 {
	rms := RMS(signal)
	if rms == 0 {
		return 0
	}

	return Peak(signal) / rms
}

// StreamingStats accumulates Stats over consecutive blocks.
type StreamingStats struct {
	n         int
	sum       float64
	sumSq     float64
	peak      float64
	peakPos   int
	crossings int
	last      float64
	nonFinite int
}

// NewStreamingStats returns an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds samples.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			s.nonFinite++
			continue
		}

		if s.n > 0 && s.last*x < 0 {
			s.crossings++
		}

		if a := math.Abs(x); a > s.peak {
			s.peak, s.peakPos = a, s.n
		}

		s.sum += x
		s.sumSq += x * x
		s.last = x
		s.n++
	}
}

// Result returns the statistics of everything added so far.
func (s *StreamingStats) Result() Stats {
	r := Stats{
		Length:        s.n,
		Peak:          s.peak,
		PeakPos:       s.peakPos,
		PeakdB:        ampTodB(s.peak),
		RMSdB:         math.Inf(-1),
		ZeroCrossings: s.crossings,
		NonFinite:     s.nonFinite,
	}

	if s.n == 0 {
		return r
	}

	n := float64(s.n)
	r.DC = s.sum / n
	r.RMS = math.Sqrt(s.sumSq / n)
	r.RMSdB = ampTodB(r.RMS)

	if r.RMS > 0 {
		r.CrestFactor = r.Peak / r.RMS
	}

	return r
}

// Reset clears the accumulator.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

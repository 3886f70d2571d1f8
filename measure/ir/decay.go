package ir

import "math"

// DecayAt returns the level of the energy decay curve at seconds after the
// response's peak, in dB relative to the total energy. Past the end of the
// response, or where no energy is left, it returns -200 dB.
func (a *Analyzer) DecayAt(ir []float64, seconds float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	if seconds < 0 {
		return 0, ErrInvalidTime
	}

	peak := findPeak(ir)
	if ir[peak] == 0 {
		return floorDB, nil
	}

	tail := ir[peak:]

	idx := int(math.Round(seconds * a.SampleRate))
	if idx >= len(tail) {
		return floorDB, nil
	}

	return schroeder(tail)[idx], nil
}

// TailLevel returns the peak magnitude of ir from seconds onwards relative
// to the peak magnitude of the whole response, in dB.
func (a *Analyzer) TailLevel(ir []float64, seconds float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	peak := math.Abs(ir[findPeak(ir)])
	if peak == 0 {
		return floorDB, nil
	}

	start := int(math.Round(seconds * a.SampleRate))
	if start >= len(ir) {
		return floorDB, nil
	}

	var tail float64
	for _, v := range ir[max(start, 0):] {
		tail = math.Max(tail, math.Abs(v))
	}

	if tail == 0 {
		return floorDB, nil
	}

	return 20 * math.Log10(tail/peak), nil
}

package ir

import (
	"errors"
	"math"
)

// Errors returned by the analyzer.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidTime       = errors.New("ir: time must be positive")
	ErrNoDecay           = errors.New("ir: insufficient decay for RT calculation")
)

// floorDB is reported for parts of the decay curve that hold no energy.
const floorDB = -200.0

// Metrics summarises one impulse response. Times are in seconds.
type Metrics struct {
	RT60       float64 // T30 if the curve reaches -35 dB, else T20
	EDT        float64 // 0 to -10 dB, extrapolated
	T20        float64 // -5 to -25 dB, extrapolated
	T30        float64 // -5 to -35 dB, extrapolated
	C50        float64 // dB
	C80        float64 // dB
	D50        float64 // 0..1
	D80        float64 // 0..1
	CenterTime float64
	PeakIndex  int // absolute maximum; every other figure is measured from here
}

// Analyzer computes metrics for responses sampled at SampleRate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer returns an analyzer for sampleRate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

func (a *Analyzer) check(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}

	if a.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Analyze computes every metric, starting at the response's peak.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.check(ir); err != nil {
		return Metrics{}, err
	}

	peak := findPeak(ir)
	tail := ir[peak:]
	curve := schroeder(tail)

	m := Metrics{
		PeakIndex:  peak,
		EDT:        a.decayTime(curve, 0, -10),
		T20:        a.decayTime(curve, -5, -25),
		T30:        a.decayTime(curve, -5, -35),
		CenterTime: a.centerTime(tail),
	}

	m.D50, m.C50 = a.split(tail, 50)
	m.D80, m.C80 = a.split(tail, 80)

	m.RT60 = m.T30
	if m.RT60 <= 0 {
		m.RT60 = m.T20
	}

	return m, nil
}

// SchroederIntegral returns the backward-integrated energy of ir in dB
// relative to its total energy:
//
//	S(t) = 10*log10( ∫_t^∞ h²(τ) dτ / ∫_0^∞ h²(τ) dτ )
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	return schroeder(ir), nil
}

// RT60 returns T30, or T20 when the response does not decay by 35 dB.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	curve := schroeder(ir)
	if rt := a.decayTime(curve, -5, -35); rt > 0 {
		return rt, nil
	}

	if rt := a.decayTime(curve, -5, -25); rt > 0 {
		return rt, nil
	}

	return 0, ErrNoDecay
}

// Definition returns the share of energy arriving before timeMs.
func (a *Analyzer) Definition(ir []float64, timeMs float64) (float64, error) {
	if err := a.checkTime(ir, timeMs); err != nil {
		return 0, err
	}

	d, _ := a.split(ir, timeMs)

	return d, nil
}

// Clarity returns the early-to-late energy ratio at timeMs in dB.
func (a *Analyzer) Clarity(ir []float64, timeMs float64) (float64, error) {
	if err := a.checkTime(ir, timeMs); err != nil {
		return 0, err
	}

	_, c := a.split(ir, timeMs)

	return c, nil
}

// CenterTime returns the energy centroid of ir in seconds.
func (a *Analyzer) CenterTime(ir []float64) (float64, error) {
	if err := a.check(ir); err != nil {
		return 0, err
	}

	return a.centerTime(ir), nil
}

// FindImpulseStart returns the first sample within 20 dB of the peak.
func (a *Analyzer) FindImpulseStart(ir []float64) (int, error) {
	if len(ir) == 0 {
		return 0, ErrEmptyIR
	}

	threshold := 0.1 * math.Abs(ir[findPeak(ir)])
	for i, v := range ir {
		if math.Abs(v) >= threshold {
			return i, nil
		}
	}

	return 0, nil
}

func (a *Analyzer) checkTime(ir []float64, timeMs float64) error {
	if err := a.check(ir); err != nil {
		return err
	}

	if timeMs <= 0 {
		return ErrInvalidTime
	}

	return nil
}

// split returns definition and clarity at boundary timeMs.
func (a *Analyzer) split(ir []float64, timeMs float64) (float64, float64) {
	boundary := int(math.Round(timeMs * 0.001 * a.SampleRate))
	if boundary <= 0 {
		return 0, math.Inf(-1)
	}

	if boundary >= len(ir) {
		return 1, math.Inf(1)
	}

	var early, late float64
	for _, v := range ir[:boundary] {
		early += v * v
	}

	for _, v := range ir[boundary:] {
		late += v * v
	}

	total := early + late

	switch {
	case total <= 0:
		return 0, math.Inf(-1)
	case late <= 0:
		return 1, math.Inf(1)
	case early <= 0:
		return 0, math.Inf(-1)
	}

	return early / total, 10 * math.Log10(early/late)
}

func (a *Analyzer) centerTime(ir []float64) float64 {
	var weighted, total float64
	for i, v := range ir {
		e := v * v
		weighted += float64(i) * e
		total += e
	}

	if total <= 0 {
		return 0
	}

	return weighted / total / a.SampleRate
}

// decayTime fits a line to the decay curve between startDB and endDB and
// extrapolates it to -60 dB. It returns 0 if the curve never spans the range.
func (a *Analyzer) decayTime(curve []float64, startDB, endDB float64) float64 {
	start, end := -1, -1
	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}

		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}

	if start < 0 || end <= start {
		return 0
	}

	slope := fitSlope(curve[start : end+1])
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

// fitSlope is the least-squares slope of y against its index.
func fitSlope(y []float64) float64 {
	n := float64(len(y))

	var sx, sy, sxx, sxy float64
	for i, v := range y {
		x := float64(i)
		sx += x
		sy += v
		sxx += x * x
		sxy += x * v
	}

	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	return (n*sxy - sx*sy) / den
}

func schroeder(ir []float64) []float64 {
	out := make([]float64, len(ir))

	var acc float64
	for i := len(ir) - 1; i >= 0; i-- {
		acc += ir[i] * ir[i]
		out[i] = acc
	}

	total := out[0]
	if total <= 0 {
		return out
	}

	for i, e := range out {
		if e <= 0 {
			out[i] = floorDB
			continue
		}

		out[i] = 10 * math.Log10(e/total)
	}

	return out
}

func findPeak(ir []float64) int {
	idx, peak := 0, 0.0
	for i, v := range ir {
		if av := math.Abs(v); av > peak {
			idx, peak = i, av
		}
	}

	return idx
}

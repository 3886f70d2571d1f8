package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates one DFT term at an arbitrary frequency. The result
// covers every sample fed since the last Reset.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel returns a filter tuned to frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("goertzel: frequency must be within [0, %v]: %v", sampleRate/2, frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Frequency returns the tuned frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// Process feeds a block of samples.
func (g *Goertzel) Process(x []float64) {
	s0, s1, c := g.s0, g.s1, g.coeff
	for _, v := range x {
		s0, s1 = v+c*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X(f)|² over the samples fed so far.
func (g *Goertzel) Power() float64 {
	return max(g.s0*g.s0+g.s1*g.s1-g.coeff*g.s0*g.s1, 0)
}

// Magnitude returns |X(f)|.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(g.Power())
}

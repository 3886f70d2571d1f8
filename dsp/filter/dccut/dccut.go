// Package dccut removes the DC component of a signal with a leaky
// differentiator.
package dccut

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// DefaultCutoff is the corner frequency used by the reverb input stage.
const DefaultCutoff = 5.0

// Filter implements y[n] = x[n] - x[n-1] + g*y[n-1].
type Filter struct {
	gain   float64
	x1, y1 float64
}

// New returns a DC blocker with the given corner frequency.
func New(cutoff, sampleRate float64) *Filter {
	f := &Filter{}
	f.SetCutoff(cutoff, sampleRate)

	return f
}

// SetCutoff sets g = 1 - 2*pi*fc/fs, clamped to [0, 1).
func (f *Filter) SetCutoff(cutoff, sampleRate float64) {
	if sampleRate <= 0 {
		f.gain = 0
		return
	}

	f.gain = core.Clamp(1-2*math.Pi*cutoff/sampleRate, 0, 0.999999)
}

// Gain returns the pole radius.
func (f *Filter) Gain() float64 {
	return f.gain
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := x - f.x1 + f.gain*f.y1
	f.x1 = x
	f.y1 = core.FlushDenormals(y)

	return y
}

// Reset clears the state.
func (f *Filter) Reset() {
	f.x1, f.y1 = 0, 0
}

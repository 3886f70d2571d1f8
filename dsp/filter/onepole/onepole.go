package onepole

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/filter/design"
)

// Filter is a first-order IIR section in transposed direct form:
//
//	y = b0*x + s
//	s = b1*x - a1*y
//
// The zero value passes nothing; call SetLowpass, SetHighpass or SetIdentity.
type Filter struct {
	b0, b1, a1 float64
	s          float64
}

// NewLowpass returns a low-pass with cutoff freq.
func NewLowpass(freq, sampleRate float64) *Filter {
	f := &Filter{}
	f.SetLowpass(freq, sampleRate)

	return f
}

// NewHighpass returns a high-pass with cutoff freq.
func NewHighpass(freq, sampleRate float64) *Filter {
	f := &Filter{}
	f.SetHighpass(freq, sampleRate)

	return f
}

// SetLowpass redesigns the filter as a low-pass at freq. State is kept.
// The cutoff is clamped below Nyquist.
func (f *Filter) SetLowpass(freq, sampleRate float64) {
	if sampleRate <= 0 {
		f.SetIdentity()
		return
	}

	k := prewarp(freq, sampleRate)
	f.b0 = k / (1 + k)
	f.b1 = f.b0
	f.a1 = -(1 - k) / (1 + k)
}

// SetHighpass redesigns the filter as a high-pass at freq. State is kept.
func (f *Filter) SetHighpass(freq, sampleRate float64) {
	if sampleRate <= 0 {
		f.SetIdentity()
		return
	}

	k := prewarp(freq, sampleRate)
	f.b0 = 1 / (1 + k)
	f.b1 = -f.b0
	f.a1 = -(1 - k) / (1 + k)
}

// SetIdentity makes the filter transparent.
func (f *Filter) SetIdentity() {
	f.b0, f.b1, f.a1 = 1, 0, 0
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b0*x + f.s
	f.s = core.FlushDenormals(f.b1*x - f.a1*y)

	return y
}

// Reset clears the state.
func (f *Filter) Reset() {
	f.s = 0
}

// Response returns |H(e^jw)| at freq.
func (f *Filter) Response(freq, sampleRate float64) float64 {
	w := 2 * math.Pi * freq / sampleRate
	re1, im1 := math.Cos(w), -math.Sin(w)

	numRe, numIm := f.b0+f.b1*re1, f.b1*im1
	denRe, denIm := 1+f.a1*re1, f.a1*im1

	return math.Hypot(numRe, numIm) / math.Hypot(denRe, denIm)
}

func prewarp(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * design.ClampFrequency(freq, sampleRate) / sampleRate)
}

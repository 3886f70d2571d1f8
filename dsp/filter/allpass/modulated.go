package allpass

import (
	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
)

// guard is the headroom a modulated line needs beyond size+msize for the
// four-point interpolator.
const guard = 3

// maxDepth keeps the modulation offset strictly below msize.
const maxDepth = 1 - 1e-9

// ModulatedCapacity returns the storage a Modulated stage needs for the
// given base delay and modulation window.
func ModulatedCapacity(size, msize int) int {
	return size + msize + guard
}

// Modulated is an all-pass stage whose delay is size + m*msize for a
// modulation value m in [0, 1) supplied on every sample.
type Modulated struct {
	line     delay.Line
	size     int
	msize    int
	feedback float64
	decay    float64
}

// NewModulated returns a stage with its own storage sized for size and msize.
func NewModulated(size, msize int) (*Modulated, error) {
	l, err := delay.New(ModulatedCapacity(max(size, 1), max(msize, 0)))
	if err != nil {
		return nil, err
	}

	m := &Modulated{line: *l, feedback: 0.5, decay: 1}
	m.SetSize(size, msize)

	return m, nil
}

// ModulatedFromSpan builds a stage over arena storage. Call SetSize before
// processing.
func ModulatedFromSpan(s buffer.Span) Modulated {
	m := Modulated{line: delay.FromSpan(s), feedback: 0.5, decay: 1}
	m.SetSize(1, 0)

	return m
}

// SetSize sets the base delay and the modulation window. If they do not fit
// the capacity the base delay shrinks first, then the window. It reports
// whether anything was clamped.
func (m *Modulated) SetSize(size, msize int) bool {
	clamped := false
	if size < 1 {
		size, clamped = 1, true
	}

	if msize < 0 {
		msize, clamped = 0, true
	}

	room := m.line.Cap() - guard
	if size+msize > room {
		clamped = true
		size = max(room-msize, 1)
		msize = max(room-size, 0)
	}

	m.size, m.msize = size, msize
	m.line.SetSize(ModulatedCapacity(size, msize))

	return clamped
}

// Size returns the base delay.
func (m *Modulated) Size() int { return m.size }

// ModSize returns the modulation window.
func (m *Modulated) ModSize() int { return m.msize }

// NominalDelay is the delay at the centre of the modulation window.
func (m *Modulated) NominalDelay() float64 {
	return float64(m.size) + 0.5*float64(m.msize)
}

// SetFeedback sets g.
func (m *Modulated) SetFeedback(g float64) { m.feedback = g }

// SetDecay sets the output loss factor.
func (m *Modulated) SetDecay(d float64) { m.decay = d }

// Decay returns the output loss factor.
func (m *Modulated) Decay() float64 { return m.decay }

// SetRT60 derives the decay from NominalDelay.
func (m *Modulated) SetRT60(rt60, sampleRate float64) {
	m.decay = core.DecayGain(m.NominalDelay(), rt60, sampleRate)
}

// ProcessSample runs one sample through the stage with modulation mod.
// mod is clamped to [0, 1).
func (m *Modulated) ProcessSample(x, mod float64) float64 {
	d := float64(m.size) + core.Clamp(mod, 0, maxDepth)*float64(m.msize)

	// Tap(k) holds v[n-1-k].
	vd := m.line.ReadFractional(d - 1)
	v := core.FlushDenormals(x + m.feedback*vd)
	m.line.Write(v)

	return m.decay * (vd - m.feedback*v)
}

// Reset clears the delay line.
func (m *Modulated) Reset() {
	m.line.Reset()
}

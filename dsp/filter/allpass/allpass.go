package allpass

import (
	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
)

// Allpass is a single Schroeder all-pass stage.
type Allpass struct {
	line     delay.Line
	feedback float64
	decay    float64
}

// New returns a stage with its own storage of the given capacity. The delay
// starts at capacity, the feedback at 0.5 and the decay at 1.
func New(capacity int) (*Allpass, error) {
	l, err := delay.New(capacity)
	if err != nil {
		return nil, err
	}

	return &Allpass{line: *l, feedback: 0.5, decay: 1}, nil
}

// FromSpan builds a stage over arena storage.
func FromSpan(s buffer.Span) Allpass {
	return Allpass{line: delay.FromSpan(s), feedback: 0.5, decay: 1}
}

// SetSize sets the delay in samples, clamped to [1, Cap()]. It reports
// whether the value was clamped.
func (a *Allpass) SetSize(n int) bool {
	return a.line.SetSize(n)
}

// Size returns the delay in samples.
func (a *Allpass) Size() int { return a.line.Size() }

// Cap returns the largest delay the stage can hold.
func (a *Allpass) Cap() int { return a.line.Cap() }

// SetFeedback sets g.
func (a *Allpass) SetFeedback(g float64) { a.feedback = g }

// Feedback returns g.
func (a *Allpass) Feedback() float64 { return a.feedback }

// SetDecay sets the output loss factor.
func (a *Allpass) SetDecay(d float64) { a.decay = d }

// Decay returns the output loss factor.
func (a *Allpass) Decay() float64 { return a.decay }

// SetRT60 derives the decay from the current delay so that a signal
// recirculating through this stage loses 60 dB in rt60 seconds.
func (a *Allpass) SetRT60(rt60, sampleRate float64) {
	a.decay = core.DecayGain(float64(a.line.Size()), rt60, sampleRate)
}

// ProcessSample runs one sample through the stage.
func (a *Allpass) ProcessSample(x float64) float64 {
	vd := a.line.Oldest()
	v := core.FlushDenormals(x + a.feedback*vd)
	a.line.Write(v)

	return a.decay * (vd - a.feedback*v)
}

// Reset clears the delay line.
func (a *Allpass) Reset() {
	a.line.Reset()
}

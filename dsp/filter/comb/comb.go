// Package comb provides a feedback comb filter over a fixed-capacity delay
// line.
package comb

import (
	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
)

// Comb computes y[n] = x[n] + feedback*y[n-D].
type Comb struct {
	line     delay.Line
	feedback float64
}

// New returns a comb with its own storage. The delay starts at capacity.
func New(capacity int) (*Comb, error) {
	l, err := delay.New(capacity)
	if err != nil {
		return nil, err
	}

	return &Comb{line: *l}, nil
}

// FromSpan builds a comb over arena storage.
func FromSpan(s buffer.Span) Comb {
	return Comb{line: delay.FromSpan(s)}
}

// SetSize sets D, clamped to [1, Cap()]. It reports whether it was clamped.
func (c *Comb) SetSize(n int) bool {
	return c.line.SetSize(n)
}

// Size returns D.
func (c *Comb) Size() int { return c.line.Size() }

// SetFeedback sets the feedback gain. Magnitudes of 1 or more are unstable;
// the caller keeps it below 1.
func (c *Comb) SetFeedback(g float64) {
	c.feedback = g
}

// Feedback returns the feedback gain.
func (c *Comb) Feedback() float64 { return c.feedback }

// ProcessSample runs one sample through the comb.
func (c *Comb) ProcessSample(x float64) float64 {
	y := core.FlushDenormals(x + c.feedback*c.line.Oldest())
	c.line.Write(y)

	return y
}

// Reset clears the delay line.
func (c *Comb) Reset() {
	c.line.Reset()
}

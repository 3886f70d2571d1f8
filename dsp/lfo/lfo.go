// Package lfo provides a sine low-frequency oscillator driven by complex
// rotation instead of a phase accumulator.
package lfo

import "math"

// renormInterval is how often the rotating vector is pulled back onto the
// unit circle.
const renormInterval = 4096

// LFO rotates the unit vector (re, im) by a fixed angle every sample.
// Next returns the imaginary part, a sine in [-1, 1].
type LFO struct {
	re, im float64
	sn, co float64
	count  int
}

// New returns an oscillator at freq Hz.
func New(freq, sampleRate float64) *LFO {
	l := &LFO{}
	l.SetFrequency(freq, sampleRate)
	l.Reset()

	return l
}

// SetFrequency changes the rotation step. Phase is kept.
// A non-positive sample rate stops the oscillator.
func (l *LFO) SetFrequency(freq, sampleRate float64) {
	if sampleRate <= 0 {
		l.sn, l.co = 0, 1
		return
	}

	w := 2 * math.Pi * freq / sampleRate
	l.sn, l.co = math.Sin(w), math.Cos(w)
}

// Next returns the current value and advances by one sample.
func (l *LFO) Next() float64 {
	out := l.im

	re := l.re*l.co - l.im*l.sn
	im := l.re*l.sn + l.im*l.co
	l.re, l.im = re, im

	l.count++
	if l.count >= renormInterval {
		l.count = 0
		l.normalize()
	}

	return out
}

// Cos returns the quadrature component without advancing.
func (l *LFO) Cos() float64 {
	return l.re
}

// Reset restarts at phase zero.
func (l *LFO) Reset() {
	l.re, l.im = 1, 0
	l.count = 0
}

func (l *LFO) normalize() {
	r := math.Hypot(l.re, l.im)
	if r == 0 {
		l.re, l.im = 1, 0
		return
	}

	l.re /= r
	l.im /= r
}

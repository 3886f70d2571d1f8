package allpass

import "github.com/cwbudde/algo-reverb/dsp/buffer"

// Allpass2 is two plain stages in series.
type Allpass2 struct {
	Stages [2]Allpass
}

// NewAllpass2FromArena carves both stages from a.
func NewAllpass2FromArena(a *buffer.Arena, cap1, cap2 int) (Allpass2, error) {
	s1, err := a.Span(cap1)
	if err != nil {
		return Allpass2{}, err
	}

	s2, err := a.Span(cap2)
	if err != nil {
		return Allpass2{}, err
	}

	return Allpass2{Stages: [2]Allpass{FromSpan(s1), FromSpan(s2)}}, nil
}

// SetRT60 derives each stage's decay from its own delay.
func (c *Allpass2) SetRT60(rt60, sampleRate float64) {
	for i := range c.Stages {
		c.Stages[i].SetRT60(rt60, sampleRate)
	}
}

// NominalDelay returns the summed stage delays.
func (c *Allpass2) NominalDelay() float64 {
	return float64(c.Stages[0].Size() + c.Stages[1].Size())
}

// ProcessSample runs x through both stages.
func (c *Allpass2) ProcessSample(x float64) float64 {
	return c.Stages[1].ProcessSample(c.Stages[0].ProcessSample(x))
}

// Reset clears both stages.
func (c *Allpass2) Reset() {
	c.Stages[0].Reset()
	c.Stages[1].Reset()
}

// Allpass3 is a modulated stage followed by two plain stages.
type Allpass3 struct {
	First  Modulated
	Stages [2]Allpass
}

// NewAllpass3FromArena carves all three stages from a. cap1 is the capacity
// of the modulated stage, see ModulatedCapacity.
func NewAllpass3FromArena(a *buffer.Arena, cap1, cap2, cap3 int) (Allpass3, error) {
	s1, err := a.Span(cap1)
	if err != nil {
		return Allpass3{}, err
	}

	rest, err := NewAllpass2FromArena(a, cap2, cap3)
	if err != nil {
		return Allpass3{}, err
	}

	return Allpass3{First: ModulatedFromSpan(s1), Stages: rest.Stages}, nil
}

// SetRT60 derives each stage's decay from its own delay.
func (c *Allpass3) SetRT60(rt60, sampleRate float64) {
	c.First.SetRT60(rt60, sampleRate)
	for i := range c.Stages {
		c.Stages[i].SetRT60(rt60, sampleRate)
	}
}

// NominalDelay returns the summed stage delays, using the centre of the
// modulation window for the first stage.
func (c *Allpass3) NominalDelay() float64 {
	return c.First.NominalDelay() + float64(c.Stages[0].Size()+c.Stages[1].Size())
}

// ProcessSample runs x through the three stages; mod drives the first one.
func (c *Allpass3) ProcessSample(x, mod float64) float64 {
	y := c.First.ProcessSample(x, mod)
	y = c.Stages[0].ProcessSample(y)

	return c.Stages[1].ProcessSample(y)
}

// Reset clears all stages.
func (c *Allpass3) Reset() {
	c.First.Reset()
	c.Stages[0].Reset()
	c.Stages[1].Reset()
}

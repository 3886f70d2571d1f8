package biquad

// Chain runs sections in series. Its length is fixed at construction so it
// can sit inside processors that must not allocate while running.
type Chain struct {
	sections []Section
}

// NewChain builds one Section per coefficient set, in order.
func NewChain(coeffs ...Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample feeds x through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through every section.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// SetCoefficients assigns the same coefficients to every section and keeps
// the state. Cascading identical sections is how the oversampler sharpens
// its anti-alias roll-off.
func (c *Chain) SetCoefficients(coeffs Coefficients) {
	for i := range c.sections {
		c.sections[i].Coefficients = coeffs
	}
}

// Reset clears every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Len returns the number of sections.
func (c *Chain) Len() int {
	return len(c.sections)
}

// Section returns the i-th section.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-reverb/dsp/filter/design"
)

// MaxFactor is the largest supported oversampling factor.
const MaxFactor = 4

// CutoffRatio places the anti-alias corner relative to the base rate.
const CutoffRatio = 0.45

var (
	// ErrInvalidFactor indicates a factor outside [1, MaxFactor].
	ErrInvalidFactor = errors.New("resample: invalid oversampling factor")
	// ErrInvalidRate indicates a non-positive base sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// Butterworth fourth order as two sections.
var butterworthQ = [2]float64{0.5411961001461969, 1.3065629648763766}

// Oversampler converts one channel between the base rate and factor times
// the base rate. It never allocates after NewOversampler.
type Oversampler struct {
	factor int
	up     *biquad.Chain
	down   *biquad.Chain
}

// NewOversampler returns a pass-through oversampler (factor 1).
func NewOversampler() *Oversampler {
	return &Oversampler{
		factor: 1,
		up:     biquad.NewChain(biquad.Identity(), biquad.Identity()),
		down:   biquad.NewChain(biquad.Identity(), biquad.Identity()),
	}
}

// Configure sets the factor and designs the filters for baseRate. Filter
// state is cleared.
func (o *Oversampler) Configure(factor int, baseRate float64) error {
	if factor < 1 || factor > MaxFactor {
		return fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	if baseRate <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidRate, baseRate)
	}

	o.Redesign(factor, baseRate)
	o.Reset()

	return nil
}

// Redesign sets the factor and filters like Configure but keeps the filter
// state. factor is clamped to [1, MaxFactor]; a non-positive baseRate
// leaves the filters pass-through.
func (o *Oversampler) Redesign(factor int, baseRate float64) {
	o.factor = min(max(factor, 1), MaxFactor)

	internal := baseRate * float64(o.factor)
	for i, q := range butterworthQ {
		c := biquad.Identity()
		if o.factor > 1 && baseRate > 0 {
			c = design.Lowpass(CutoffRatio*baseRate, q, internal)
		}

		o.up.Section(i).SetCoefficients(c)
		o.down.Section(i).SetCoefficients(c)
	}
}

// Factor returns the current factor.
func (o *Oversampler) Factor() int {
	return o.factor
}

// Up writes Factor() internal samples for x into dst, which must hold at
// least Factor() samples.
func (o *Oversampler) Up(x float64, dst []float64) {
	if o.factor == 1 {
		dst[0] = x
		return
	}

	dst[0] = o.up.ProcessSample(x * float64(o.factor))
	for i := 1; i < o.factor; i++ {
		dst[i] = o.up.ProcessSample(0)
	}
}

// Down consumes Factor() internal samples from src and returns one
// base-rate sample.
func (o *Oversampler) Down(src []float64) float64 {
	if o.factor == 1 {
		return src[0]
	}

	var y float64
	for i := range o.factor {
		y = o.down.ProcessSample(src[i])
	}

	return y
}

// Reset clears the filter state.
func (o *Oversampler) Reset() {
	o.up.Reset()
	o.down.Reset()
}

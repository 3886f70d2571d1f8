package reverb

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// derive turns p into sizes, coefficients and mix gains. Ranges are not
// checked here; sizes are clamped to the storage reserved in New.
func (e *Engine) derive(p *Params) {
	fs := p.SampleRate
	e.factor = p.Oversample
	fsi := fs * float64(e.factor)

	e.dry = core.DBToLinear(p.Dry)
	e.erWet = core.DBToLinear(p.ERWet)
	e.erToLate = p.ERToLate

	wet := core.DBToLinear(p.Wet)
	e.wet1 = wet * (p.Width/2 + 0.5)
	e.wet2 = wet * (1 - p.Width) / 2

	// A positive delay holds back the reverb, a negative one the dry path.
	n := core.SecondsToSamples(math.Abs(p.Delay), fs)
	e.usePre = p.Delay > 0 && n > 0
	e.useDry = p.Delay < 0 && n > 0

	for c := range 2 {
		e.preDelay[c].SetSize(n)
		e.dryDelay[c].SetSize(n)
		e.up[c].Redesign(e.factor, fs)
		e.down[c].Redesign(e.factor, fs)
	}

	e.er.configure(p, fs)
	e.late.configure(p, fsi)
}

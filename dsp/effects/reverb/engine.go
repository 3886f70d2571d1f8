package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/resample"
)

// Engine is a stereo reverb with fixed storage. The zero value is not
// usable; call New.
type Engine struct {
	opts  options
	arena *buffer.Arena

	er   earlyReflections
	late lateNetwork

	preDelay  [2]delay.Line
	dryDelay  [2]delay.Line
	usePre    bool
	useDry    bool
	up, down  [2]*resample.Oversampler
	upBuf     [2][resample.MaxFactor]float64
	lateBuf   [2][resample.MaxFactor]float64
	factor    int
	bypass    bool
	params    Params
	hasParams bool

	dry, erWet, erToLate float64
	wet1, wet2           float64
}

// New builds an engine. All delay storage is reserved here, sized for the
// maximum internal rate; nothing is allocated afterwards. The engine starts
// bypassed until the first successful Configure.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{opts: defaultOptions(), bypass: true, factor: 1}
	for _, opt := range opts {
		opt(&e.opts)
	}

	l := newLayout(e.opts.maxInternalRate)
	e.arena = buffer.NewArena(l.total())

	if err := e.er.carve(e.arena, &l); err != nil {
		return nil, fmt.Errorf("reverb: early reflections: %w", err)
	}

	if err := e.late.carve(e.arena, &l); err != nil {
		return nil, fmt.Errorf("reverb: late network: %w", err)
	}

	for c := range 2 {
		s, err := e.arena.Span(l.ch[c].preDelay)
		if err != nil {
			return nil, fmt.Errorf("reverb: pre-delay: %w", err)
		}

		e.preDelay[c] = delay.FromSpan(s)

		s, err = e.arena.Span(l.ch[c].dryDelay)
		if err != nil {
			return nil, fmt.Errorf("reverb: dry delay: %w", err)
		}

		e.dryDelay[c] = delay.FromSpan(s)

		e.up[c] = resample.NewOversampler()
		e.down[c] = resample.NewOversampler()
	}

	e.Reset()

	return e, nil
}

// Configure applies cfg. A Preset or Params fully replaces the previous
// settings and, unless WithPreservedTail was given, clears all state. Bypass
// keeps the stored settings and state untouched.
func (e *Engine) Configure(cfg Config) error {
	switch c := cfg.(type) {
	case nil:
		return ErrNilConfig
	case Bypass:
		e.bypass = true
		return nil
	case Preset:
		p, err := c.ID.Params(c.SampleRate)
		if err != nil {
			return err
		}

		return e.apply(p)
	case Params:
		return e.apply(c)
	default:
		return fmt.Errorf("reverb: unsupported config type %T", cfg)
	}
}

func (e *Engine) apply(p Params) error {
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, p.SampleRate)
	}

	if p.Oversample < 1 || p.Oversample > resample.MaxFactor {
		return fmt.Errorf("%w: %d", ErrInvalidOversample, p.Oversample)
	}

	e.derive(&p)
	e.params = p
	e.hasParams = true
	e.bypass = false

	if !e.opts.preserveTail {
		e.Reset()
	}

	return nil
}

// Bypassed reports whether the engine passes its input through unchanged.
func (e *Engine) Bypassed() bool {
	return e.bypass
}

// Params returns the settings of the last successful Preset or Params
// configuration.
func (e *Engine) Params() (Params, bool) {
	return e.params, e.hasParams
}

// InternalRate returns the rate the late network runs at, or 0 before the
// first configuration.
func (e *Engine) InternalRate() float64 {
	if !e.hasParams {
		return 0
	}

	return e.params.SampleRate * float64(e.factor)
}

// Process runs src through the engine into dst. dst may alias src and must
// be at least as long.
func (e *Engine) Process(dst, src []Sample) {
	if len(dst) < len(src) {
		panic("reverb: dst shorter than src")
	}

	if e.bypass {
		copy(dst, src)
		return
	}

	for i, s := range src {
		dst[i] = e.ProcessSample(s)
	}
}

// ProcessSample runs one stereo frame.
func (e *Engine) ProcessSample(in Sample) Sample {
	if e.bypass {
		return in
	}

	erL, erR := e.er.process(in.L, in.R)

	lateL := in.L + e.erToLate*erL
	lateR := in.R + e.erToLate*erR
	if e.usePre {
		lateL = e.preDelay[0].Step(lateL)
		lateR = e.preDelay[1].Step(lateR)
	}

	dryL, dryR := in.L, in.R
	if e.useDry {
		dryL = e.dryDelay[0].Step(dryL)
		dryR = e.dryDelay[1].Step(dryR)
	}

	f := e.factor
	e.up[0].Up(lateL, e.upBuf[0][:f])
	e.up[1].Up(lateR, e.upBuf[1][:f])

	for i := range f {
		e.lateBuf[0][i], e.lateBuf[1][i] = e.late.process(e.upBuf[0][i], e.upBuf[1][i])
	}

	outL := e.down[0].Down(e.lateBuf[0][:f])
	outR := e.down[1].Down(e.lateBuf[1][:f])

	return Sample{
		L: e.dry*dryL + e.erWet*erL + e.wet1*outL + e.wet2*outR,
		R: e.dry*dryR + e.erWet*erR + e.wet1*outR + e.wet2*outL,
	}
}

// Reset clears every delay line, filter and oscillator. Settings are kept.
func (e *Engine) Reset() {
	e.er.reset()
	e.late.reset()

	for c := range 2 {
		e.preDelay[c].Reset()
		e.dryDelay[c].Reset()
		e.up[c].Reset()
		e.down[c].Reset()
	}
}

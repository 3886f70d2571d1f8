package reverb

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/resample"
)

// Parameter ranges accepted by Validate.
const (
	MinLevelDB  = -70.0
	MaxLevelDB  = 10.0
	MinERFactor = 0.5
	MaxERFactor = 2.5
	MinWander   = 0.1
	MaxWander   = 0.6
	MaxBassB    = 0.5
	MaxSpin     = 10.0
	MinLPF      = 200.0
	MaxLPF      = 18000.0
	MinBassLPF  = 50.0
	MaxBassLPF  = 1050.0
	MinRT60     = 0.1
	MaxRT60     = 30.0
	MaxDelay    = 0.5
)

type paramRange struct {
	name   string
	value  float64
	lo, hi float64
}

// Validate reports every field outside its documented range. A Params that
// fails Validate can still be passed to Configure; the result is merely
// outside the tuned envelope.
func (p Params) Validate() error {
	var errs []error

	if p.SampleRate <= 0 || math.IsNaN(p.SampleRate) || math.IsInf(p.SampleRate, 0) {
		errs = append(errs, fmt.Errorf("%w: sample rate %f", ErrInvalidSampleRate, p.SampleRate))
	}

	if p.Oversample < 1 || p.Oversample > resample.MaxFactor {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidOversample, p.Oversample))
	}

	for _, r := range []paramRange{
		{"er to late", p.ERToLate, 0, 1},
		{"er wet", p.ERWet, MinLevelDB, MaxLevelDB},
		{"dry", p.Dry, MinLevelDB, MaxLevelDB},
		{"er factor", p.ERFactor, MinERFactor, MaxERFactor},
		{"er width", p.ERWidth, -1, 1},
		{"width", p.Width, 0, 1},
		{"wet", p.Wet, MinLevelDB, MaxLevelDB},
		{"wander", p.Wander, MinWander, MaxWander},
		{"bass boost", p.BassBoost, 0, MaxBassB},
		{"spin", p.Spin, 0, MaxSpin},
		{"input lpf", p.InputLPF, MinLPF, MaxLPF},
		{"bass lpf", p.BassLPF, MinBassLPF, MaxBassLPF},
		{"damp lpf", p.DampLPF, MinLPF, MaxLPF},
		{"output lpf", p.OutputLPF, MinLPF, MaxLPF},
		{"rt60", p.RT60, MinRT60, MaxRT60},
		{"delay", p.Delay, -MaxDelay, MaxDelay},
	} {
		if !(r.value >= r.lo && r.value <= r.hi) {
			errs = append(errs, fmt.Errorf("%w: %s %g not in [%g, %g]", ErrOutOfRange, r.name, r.value, r.lo, r.hi))
		}
	}

	return errors.Join(errs...)
}

// Environment returns the 17 advanced values in control-vector order:
// oversample, er-to-late, er wet, dry, er factor, er width, width, wet,
// wander, bass boost, spin, input/bass/damp/output lpf, rt60, delay.
func (p Params) Environment() [17]float64 {
	return [17]float64{
		float64(p.Oversample), p.ERToLate, p.ERWet, p.Dry, p.ERFactor,
		p.ERWidth, p.Width, p.Wet, p.Wander, p.BassBoost, p.Spin,
		p.InputLPF, p.BassLPF, p.DampLPF, p.OutputLPF, p.RT60, p.Delay,
	}
}

// ParamsFromEnvironment is the inverse of Environment. The oversampling
// factor is truncated toward zero.
func ParamsFromEnvironment(sampleRate float64, env [17]float64) Params {
	return Params{
		SampleRate: sampleRate,
		Oversample: int(env[0]),
		ERToLate:   env[1],
		ERWet:      env[2],
		Dry:        env[3],
		ERFactor:   env[4],
		ERWidth:    env[5],
		Width:      env[6],
		Wet:        env[7],
		Wander:     env[8],
		BassBoost:  env[9],
		Spin:       env[10],
		InputLPF:   env[11],
		BassLPF:    env[12],
		DampLPF:    env[13],
		OutputLPF:  env[14],
		RT60:       env[15],
		Delay:      env[16],
	}
}

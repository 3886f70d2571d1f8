package host

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

// Control-vector markers in env[0].
const (
	EnvBypass = -2
	EnvPreset = -1
)

// EnvLen is the length of an advanced control vector.
const EnvLen = 17

// ErrShortEnvironment is returned for a control vector too short for its
// mode.
var ErrShortEnvironment = errors.New("host: control vector too short")

// DecodeEnvironment maps a control vector to an engine configuration.
func DecodeEnvironment(sampleRate float64, env []float64) (reverb.Config, error) {
	if len(env) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrShortEnvironment)
	}

	switch env[0] {
	case EnvBypass:
		return reverb.Bypass{}, nil
	case EnvPreset:
		if len(env) < 2 {
			return nil, fmt.Errorf("%w: preset needs 2 values, got %d", ErrShortEnvironment, len(env))
		}

		if env[1] != math.Trunc(env[1]) {
			return nil, fmt.Errorf("%w: %g", reverb.ErrUnknownPreset, env[1])
		}

		return reverb.Preset{SampleRate: sampleRate, ID: reverb.PresetID(env[1])}, nil
	}

	if len(env) < EnvLen {
		return nil, fmt.Errorf("%w: need %d values, got %d", ErrShortEnvironment, EnvLen, len(env))
	}

	return reverb.ParamsFromEnvironment(sampleRate, [EnvLen]float64(env[:EnvLen])), nil
}

// EncodePreset returns the control vector selecting id.
func EncodePreset(id reverb.PresetID) []float64 {
	return []float64{EnvPreset, float64(id)}
}

// EncodeParams returns the advanced control vector for p.
func EncodeParams(p reverb.Params) []float64 {
	env := p.Environment()
	return env[:]
}

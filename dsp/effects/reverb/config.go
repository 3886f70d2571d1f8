package reverb

import "errors"

var (
	// ErrNilConfig is returned by Configure for a nil Config.
	ErrNilConfig = errors.New("reverb: nil config")
	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("reverb: invalid sample rate")
	// ErrInvalidOversample indicates an oversampling factor outside [1, 4].
	ErrInvalidOversample = errors.New("reverb: invalid oversampling factor")
	// ErrUnknownPreset indicates a preset id or name that does not exist.
	ErrUnknownPreset = errors.New("reverb: unknown preset")
	// ErrOutOfRange is wrapped by Params.Validate for every field outside
	// its documented range.
	ErrOutOfRange = errors.New("reverb: parameter out of range")
)

// Sample is one stereo frame.
type Sample struct {
	L, R float64
}

// Config is one of Bypass, Preset or Params.
type Config interface {
	isConfig()
}

// Bypass disables the effect: output equals input.
type Bypass struct{}

// Preset selects one of the built-in parameter sets.
type Preset struct {
	SampleRate float64
	ID         PresetID
}

// Params sets every tone-shaping parameter explicitly. The comment on each
// field gives the range Validate accepts; Configure itself only rejects
// unusable sample rates and oversampling factors.
type Params struct {
	SampleRate float64

	Oversample int     // oversampling factor of the late network [1, 4]
	ERToLate   float64 // early reflections fed into the late network [0, 1]
	ERWet      float64 // dB, early reflections in the output [-70, 10]
	Dry        float64 // dB, dry signal in the output [-70, 10]
	ERFactor   float64 // early reflection time scale [0.5, 2.5]
	ERWidth    float64 // early reflection stereo width [-1, 1]
	Width      float64 // late reverb stereo width [0, 1]
	Wet        float64 // dB, late reverb in the output [-70, 10]
	Wander     float64 // modulation depth [0.1, 0.6]
	BassBoost  float64 // low-frequency emphasis inside the loop [0, 0.5]
	Spin       float64 // Hz, modulation rate [0, 10]
	InputLPF   float64 // Hz [200, 18000]
	BassLPF    float64 // Hz [50, 1050]
	DampLPF    float64 // Hz [200, 18000]
	OutputLPF  float64 // Hz [200, 18000]
	RT60       float64 // seconds to decay by 60 dB [0.1, 30]
	Delay      float64 // seconds; > 0 delays the reverb, < 0 the dry signal [-0.5, 0.5]
}

func (Bypass) isConfig() {}
func (Preset) isConfig() {}
func (Params) isConfig() {}

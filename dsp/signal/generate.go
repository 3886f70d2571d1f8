package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// Generator creates deterministic test and demo signals at the sample rate
// of a stream configuration.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by the noise generators.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator from stream options and generator options.
func NewGenerator(streamOpts []core.StreamOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyStreamOptions(streamOpts...),
		seed: 1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates samples of a sine at freqHz.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Impulse returns samples zeros with amplitude at index pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}

	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}

	out := make([]float64, samples)
	out[pos] = amplitude

	return out, nil
}

// NoiseBursts returns white-noise bursts of burst seconds repeating every
// period seconds, total seconds long. Each burst is faded in and out over
// 5 ms to avoid clicks.
func (g *Generator) NoiseBursts(amplitude, burst, period, total float64) ([]float64, error) {
	samples := core.SecondsToSamples(total, g.cfg.SampleRate)
	burstLen := core.SecondsToSamples(burst, g.cfg.SampleRate)
	periodLen := core.SecondsToSamples(period, g.cfg.SampleRate)

	if samples <= 0 || burstLen <= 0 || periodLen < burstLen {
		return nil, fmt.Errorf("noise bursts need total > 0 and period >= burst > 0: %f %f %f", total, period, burst)
	}

	fade := max(core.SecondsToSamples(0.005, g.cfg.SampleRate), 1)
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)

	for i := range out {
		k := i % periodLen
		if k >= burstLen {
			continue
		}

		env := 1.0
		if k < fade {
			env = float64(k) / float64(fade)
		} else if burstLen-k < fade {
			env = float64(burstLen-k) / float64(fade)
		}

		out[i] = amplitude * env * (rng.Float64()*2 - 1)
	}

	return out, nil
}

// Normalize scales data to targetPeak and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}

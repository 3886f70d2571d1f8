package host

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

type config struct {
	logger     logrus.FieldLogger
	engineOpts []reverb.Option
}

// Option configures an Effect.
type Option func(*config)

// WithLogger routes the effect's log output to l. The default is the
// logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEngineOptions passes opts to reverb.New.
func WithEngineOptions(opts ...reverb.Option) Option {
	return func(c *config) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}

// Effect owns one engine and the frame buffers the host exchanges with
// it. It is not safe for concurrent use.
type Effect struct {
	engine     *reverb.Engine
	log        logrus.FieldLogger
	sampleRate float64
	channels   int
	frame      []reverb.Sample
	valid      bool
	warned     bool
}

// New returns an effect for a host running at sampleRate with channels
// interleaved output channels. frameSize sizes the frame buffer up front;
// Apply grows it if the host later sends longer frames. The effect starts
// without a valid environment.
func New(sampleRate float64, channels, frameSize int, opts ...Option) (*Effect, error) {
	cfg := config{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("host: sample rate must be > 0: %f", sampleRate)
	}

	engine, err := reverb.New(cfg.engineOpts...)
	if err != nil {
		return nil, err
	}

	e := &Effect{
		engine:     engine,
		log:        cfg.logger,
		sampleRate: sampleRate,
		channels:   channels,
		frame:      make([]reverb.Sample, max(frameSize, 0)),
	}

	e.log.WithFields(logrus.Fields{
		"function":    "host.New",
		"sample_rate": sampleRate,
		"channels":    channels,
		"frame_size":  frameSize,
	}).Debug("Reverb effect created")

	return e, nil
}

// NewForStream returns an effect shaped by a stream config.
func NewForStream(stream core.StreamConfig, opts ...Option) (*Effect, error) {
	return New(stream.SampleRate, stream.Channels, stream.BlockSize, opts...)
}

// SetEnvironment decodes env and reconfigures the engine. On error the
// previous environment stays in effect.
func (e *Effect) SetEnvironment(env []float32) error {
	values := make([]float64, len(env))
	for i, v := range env {
		values[i] = float64(v)
	}

	cfg, err := DecodeEnvironment(e.sampleRate, values)
	if err == nil {
		err = e.engine.Configure(cfg)
	}

	if err != nil {
		e.log.WithFields(logrus.Fields{
			"function": "Effect.SetEnvironment",
			"values":   len(env),
			"error":    err.Error(),
		}).Error("Environment rejected")

		return err
	}

	_, bypass := cfg.(reverb.Bypass)
	e.valid = !bypass

	fields := logrus.Fields{
		"function": "Effect.SetEnvironment",
		"valid":    e.valid,
	}

	if p, ok := cfg.(reverb.Preset); ok {
		fields["preset"] = p.ID.String()
	}

	e.log.WithFields(fields).Info("Environment applied")

	return nil
}

// HasValidEnvironment reports whether Apply currently runs the reverb.
func (e *Effect) HasValidEnvironment() bool {
	return e.valid
}

// Engine exposes the underlying engine.
func (e *Effect) Engine() *reverb.Engine {
	return e.engine
}

// Apply processes one interleaved frame from in into out, which must be at
// least as long. Without a valid environment, or when the host is not
// stereo, out receives a copy of in.
func (e *Effect) Apply(in, out []float32) {
	if len(out) < len(in) {
		panic("host: output frame shorter than input frame")
	}

	if e.channels != 2 {
		if !e.warned {
			e.warned = true
			e.log.WithFields(logrus.Fields{
				"function": "Effect.Apply",
				"channels": e.channels,
			}).Warn("Reverb needs stereo output, passing audio through")
		}

		copy(out, in)

		return
	}

	if !e.valid {
		copy(out, in)
		return
	}

	n := len(in) / 2
	if n > len(e.frame) {
		e.log.WithFields(logrus.Fields{
			"function": "Effect.Apply",
			"old_size": len(e.frame),
			"new_size": n,
		}).Debug("Growing frame buffer")

		e.frame = make([]reverb.Sample, n)
	}

	frame := e.frame[:n]
	for i := range frame {
		frame[i] = reverb.Sample{L: float64(in[2*i]), R: float64(in[2*i+1])}
	}

	e.engine.Process(frame, frame)

	for i, s := range frame {
		out[2*i] = float32(s.L)
		out[2*i+1] = float32(s.R)
	}

	// A trailing half frame has no partner channel.
	if len(in)%2 == 1 {
		out[len(in)-1] = in[len(in)-1]
	}
}

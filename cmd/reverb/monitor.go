package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb/host"
)

const monitorFrame = 1024

// monitor feeds dry audio through a host effect on demand and hands out
// the wet result as float32 little-endian stereo PCM.
type monitor struct {
	effect *host.Effect
	src    []float32
	pos    int
	wet    []float32
}

func newMonitor(id reverb.PresetID, sampleRate int, dry []reverb.Sample, tail float64, log logrus.FieldLogger) (*monitor, error) {
	stream := core.ApplyStreamOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithBlockSize(monitorFrame),
		core.WithChannels(2),
	)

	effect, err := host.NewForStream(stream, host.WithLogger(log))
	if err != nil {
		return nil, err
	}

	env := host.EncodePreset(id)
	if err := effect.SetEnvironment([]float32{float32(env[0]), float32(env[1])}); err != nil {
		return nil, err
	}

	pad := core.SecondsToSamples(max(tail, 0), stream.SampleRate)
	src := make([]float32, 2*(len(dry)+pad))

	for i, s := range dry {
		src[2*i] = float32(s.L)
		src[2*i+1] = float32(s.R)
	}

	return &monitor{effect: effect, src: src, wet: make([]float32, stream.FrameLen())}, nil
}

// Read implements io.Reader. Each call processes at most one host frame.
func (m *monitor) Read(p []byte) (int, error) {
	if m.pos >= len(m.src) {
		return 0, io.EOF
	}

	n := min(len(p)/4, len(m.src)-m.pos, len(m.wet)) &^ 1
	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	wet := m.wet[:n]
	m.effect.Apply(m.src[m.pos:m.pos+n], wet)
	m.pos += n

	for i, v := range wet {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	return 4 * n, nil
}

// Seconds returns the monitored length.
func (m *monitor) Seconds(sampleRate int) float64 {
	return float64(len(m.src)/2) / float64(sampleRate)
}

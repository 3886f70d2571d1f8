package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/dsp/signal"
	"github.com/cwbudde/algo-reverb/internal/audiofile"
	stats "github.com/cwbudde/algo-reverb/stats/time"
)

const (
	renderBlock = 4096
	maxTail     = 10.0
	demoLength  = 2.0
)

// source loads the input file or, without one, generates noise bursts.
func source(o options) (*audiofile.Clip, error) {
	if o.in != "" {
		return audiofile.Read(o.in)
	}

	gen := func(seed int64) ([]float64, error) {
		g := signal.NewGenerator([]core.StreamOption{core.WithSampleRate(o.rate)}, signal.WithSeed(seed))
		return g.NoiseBursts(0.5, 0.15, 1, demoLength)
	}

	l, err := gen(o.seed)
	if err != nil {
		return nil, err
	}

	r, err := gen(o.seed + 1)
	if err != nil {
		return nil, err
	}

	frames := make([]reverb.Sample, len(l))
	for i := range frames {
		frames[i] = reverb.Sample{L: l[i], R: r[i]}
	}

	return audiofile.FromStereo(int(o.rate), frames), nil
}

// render runs in through a fresh engine configured with id and appends
// tail seconds of silence so the decay is kept.
func render(id reverb.PresetID, sampleRate float64, in []reverb.Sample, tail float64, prog *progress) ([]reverb.Sample, error) {
	engine, err := reverb.New()
	if err != nil {
		return nil, err
	}

	stream := core.ApplyStreamOptions(core.WithSampleRate(sampleRate), core.WithBlockSize(renderBlock))
	if err := engine.Configure(reverb.Preset{SampleRate: stream.SampleRate, ID: id}); err != nil {
		return nil, err
	}

	n := len(in) + core.SecondsToSamples(max(tail, 0), stream.SampleRate)
	out := make([]reverb.Sample, n)
	copy(out, in)

	for start := 0; start < n; start += stream.BlockSize {
		end := min(start+stream.BlockSize, n)
		engine.Process(out[start:end], out[start:end])
		prog.update(end, n)
	}

	prog.done()

	return out, nil
}

func tailFor(o options, id reverb.PresetID) float64 {
	if o.tail >= 0 {
		return o.tail
	}

	p, err := id.Params(o.rate)
	if err != nil {
		return 0
	}

	return math.Min(p.RT60, maxTail)
}

func levels(frames []reverb.Sample) stats.Stats {
	s := stats.NewStreamingStats()
	buf := make([]float64, 0, 2*renderBlock)

	for start := 0; start < len(frames); start += renderBlock {
		buf = buf[:0]
		for _, f := range frames[start:min(start+renderBlock, len(frames))] {
			buf = append(buf, f.L, f.R)
		}

		s.Update(buf)
	}

	return s.Result()
}

func renderToOutputs(o options, id reverb.PresetID, w io.Writer, log logrus.FieldLogger) error {
	clip, err := source(o)
	if err != nil {
		return err
	}

	in, err := clip.Stereo()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"function":    "renderToOutputs",
		"preset":      id.String(),
		"sample_rate": clip.SampleRate,
		"channels":    clip.Channels,
		"seconds":     clip.Duration(),
	}).Debug("Input loaded")

	if o.out != "" {
		if err := renderFile(o, id, clip, in, w, log); err != nil {
			return err
		}
	}

	if o.play {
		m, err := newMonitor(id, clip.SampleRate, in, tailFor(o, id), log)
		if err != nil {
			return err
		}

		return play(m, clip.SampleRate, log)
	}

	return nil
}

// renderFile renders offline, reports levels and writes o.out.
func renderFile(o options, id reverb.PresetID, clip *audiofile.Clip, in []reverb.Sample, w io.Writer, log logrus.FieldLogger) error {
	inLevels := levels(in)

	out, err := render(id, float64(clip.SampleRate), in, tailFor(o, id), newProgress("rendering"))
	if err != nil {
		return err
	}

	result := audiofile.FromStereo(clip.SampleRate, out)
	if o.normalize > 0 {
		if result.Samples, err = signal.Normalize(result.Samples, o.normalize); err != nil {
			return err
		}

		out, _ = result.Stereo()
	}

	outLevels := levels(out)
	if outLevels.NonFinite > 0 {
		log.WithFields(logrus.Fields{
			"function":   "renderFile",
			"non_finite": outLevels.NonFinite,
		}).Warn("Render produced non-finite samples")
	}

	fmt.Fprintf(w, "%s: %.2f s in, %.2f s out\n", id, clip.Duration(), result.Duration())
	fmt.Fprintf(w, "  input   peak %6.1f dBFS  rms %6.1f dBFS\n", inLevels.PeakdB, inLevels.RMSdB)
	fmt.Fprintf(w, "  output  peak %6.1f dBFS  rms %6.1f dBFS  crest %.1f\n", outLevels.PeakdB, outLevels.RMSdB, outLevels.CrestFactor)

	if outLevels.Peak > 1 {
		log.WithFields(logrus.Fields{
			"function": "renderFile",
			"peak_db":  outLevels.PeakdB,
		}).Warn("Output clips, consider -normalize")
	}

	if err := audiofile.Write(o.out, result, o.bits); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"function": "renderFile",
		"path":     o.out,
		"bits":     o.bits,
	}).Info("Output written")

	return nil
}

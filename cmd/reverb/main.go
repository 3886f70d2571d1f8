// Command reverb renders audio through the stereo reverb and reports how
// the presets decay.
//
// Usage:
//
//	reverb [flags]
//
// Without -in it renders a burst of generated noise. With -analyze it
// renders each selected preset's impulse response and prints decay and
// clarity figures instead.
//
// Examples:
//
//	reverb -list
//	reverb -analyze -all
//	reverb -analyze -bands -preset largehall1
//	reverb -preset largehall1 -in dry.wav -out wet.wav
//	reverb -preset platehigh -play
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

type options struct {
	preset    string
	all       bool
	rate      float64
	in        string
	out       string
	bits      int
	tail      float64
	normalize float64
	seed      int64
	play      bool
	analyze   bool
	bands     bool
	list      bool
	verbose   bool
}

func main() {
	var o options

	flag.StringVar(&o.preset, "preset", "default", "preset name, see -list")
	flag.BoolVar(&o.all, "all", false, "with -analyze, analyze every preset")
	flag.Float64Var(&o.rate, "rate", 48000, "sample rate for generated audio and analysis")
	flag.StringVar(&o.in, "in", "", "input file (wav, aiff, mp3, ogg)")
	flag.StringVar(&o.out, "out", "", "output WAV file")
	flag.IntVar(&o.bits, "bits", 24, "output bit depth (16, 24, 32)")
	flag.Float64Var(&o.tail, "tail", -1, "seconds of tail appended after the input, -1 follows the preset's RT60")
	flag.Float64Var(&o.normalize, "normalize", 0, "normalize the output peak to this level, 0 keeps it")
	flag.Int64Var(&o.seed, "seed", 1, "seed of the generated noise")
	flag.BoolVar(&o.play, "play", false, "monitor the input through the effect on the default output device")
	flag.BoolVar(&o.analyze, "analyze", false, "print impulse response figures")
	flag.BoolVar(&o.bands, "bands", false, "with -analyze, also print octave-band levels relative to 1 kHz")
	flag.BoolVar(&o.list, "list", false, "list presets")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reverb [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders audio through the stereo reverb.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reverb -list\n")
		fmt.Fprintf(os.Stderr, "  reverb -analyze -all\n")
		fmt.Fprintf(os.Stderr, "  reverb -preset largehall1 -in dry.wav -out wet.wav\n")
		fmt.Fprintf(os.Stderr, "  reverb -preset platehigh -play\n")
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(o, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options, w io.Writer, log logrus.FieldLogger) error {
	if o.list {
		return printList(w)
	}

	ids, err := selectPresets(o)
	if err != nil {
		return err
	}

	if o.analyze {
		return printAnalysis(w, ids, o.rate, o.bands)
	}

	if o.out == "" && !o.play {
		return errors.New("nothing to do: give -out, -play, -analyze or -list")
	}

	return renderToOutputs(o, ids[0], w, log)
}

func selectPresets(o options) ([]reverb.PresetID, error) {
	if o.all {
		return reverb.Presets(), nil
	}

	id, err := reverb.ParsePreset(o.preset)
	if err != nil {
		return nil, fmt.Errorf("%w (try -list)", err)
	}

	return []reverb.PresetID{id}, nil
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tRT60\tOVERSAMPLE\tWET\tER WET\tPRE-DELAY")
	fmt.Fprintln(tw, strings.Repeat("-", 12)+"\t----\t----------\t---\t------\t---------")

	for _, id := range reverb.Presets() {
		p, err := id.Params(48000)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%.1f s\t%dx\t%.0f dB\t%.0f dB\t%.0f ms\n",
			id, p.RT60, p.Oversample, p.Wet, p.ERWet, p.Delay*1000)
	}

	return tw.Flush()
}

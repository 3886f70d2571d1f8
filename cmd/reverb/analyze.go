package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/dsp/spectrum"
	"github.com/cwbudde/algo-reverb/measure/ir"
	stats "github.com/cwbudde/algo-reverb/stats/time"
)

const (
	maxIRSeconds = 20.0
	bandLow      = 60.0
	bandHigh     = 16000.0
)

// impulseResponse renders the left output of id for a unit impulse on
// both inputs, long enough for the decay to pass -35 dB.
func impulseResponse(id reverb.PresetID, sampleRate float64) ([]float64, error) {
	p, err := id.Params(sampleRate)
	if err != nil {
		return nil, err
	}

	seconds := math.Min(0.75*p.RT60+p.Delay+0.25, maxIRSeconds)
	out, err := render(id, sampleRate, []reverb.Sample{{L: 1, R: 1}}, seconds, newProgress("analyzing "+id.String()))
	if err != nil {
		return nil, err
	}

	h := make([]float64, len(out))
	for i, s := range out {
		h[i] = s.L
	}

	return h, nil
}

func printAnalysis(w io.Writer, ids []reverb.PresetID, sampleRate float64, bands bool) error {
	analyzer := ir.NewAnalyzer(sampleRate)
	responses := make([][]float64, 0, len(ids))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tRT60 SET\tRT60\tEDT\tC50\tC80\tD50\tTS\tPEAK")
	fmt.Fprintln(tw, "------\t--------\t----\t---\t---\t---\t---\t--\t----")

	for _, id := range ids {
		p, err := id.Params(sampleRate)
		if err != nil {
			return err
		}

		h, err := impulseResponse(id, sampleRate)
		if err != nil {
			return err
		}

		responses = append(responses, h)

		m, err := analyzer.Analyze(h)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}

		fmt.Fprintf(tw, "%s\t%.2f s\t%.2f s\t%.2f s\t%.1f dB\t%.1f dB\t%.2f\t%.0f ms\t%.1f dB\n",
			id, p.RT60, m.RT60, m.EDT, m.C50, m.C80, m.D50, m.CenterTime*1000, stats.Calculate(h).PeakdB)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if !bands {
		return nil
	}

	fmt.Fprintln(w)

	return printBands(w, ids, responses, sampleRate)
}

// printBands prints each response's octave-band levels relative to 1 kHz.
func printBands(w io.Writer, ids []reverb.PresetID, responses [][]float64, sampleRate float64) error {
	centres := spectrum.BandCentres(bandLow, math.Min(bandHigh, 0.45*sampleRate), 1)

	ref := -1
	for i, f := range centres {
		if math.Abs(f-1000) < 1e-6 {
			ref = i
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "PRESET\t")

	for _, f := range centres {
		if f < 1000 {
			fmt.Fprintf(tw, "%.0f\t", f)
		} else {
			fmt.Fprintf(tw, "%.0fk\t", f/1000)
		}
	}

	fmt.Fprintln(tw, "CENTROID\t")

	for i, id := range ids {
		levels, err := spectrum.BandLevels(responses[i], sampleRate, centres)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}

		fmt.Fprintf(tw, "%s\t", id)

		for _, v := range spectrum.Relative(levels, ref) {
			fmt.Fprintf(tw, "%+.1f\t", v)
		}

		centroid, err := spectralCentroid(responses[i], sampleRate)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}

		fmt.Fprintf(tw, "%.0f Hz\t\n", centroid)
	}

	return tw.Flush()
}

// spectralCentroid returns the power-weighted mean frequency of h.
func spectralCentroid(h []float64, sampleRate float64) (float64, error) {
	mag, err := ir.MagnitudeResponse(h, 0)
	if err != nil {
		return 0, err
	}

	binHz := sampleRate / float64(2*(len(mag)-1))

	var num, den float64
	for k, m := range mag {
		p := m * m
		num += float64(k) * binHz * p
		den += p
	}

	if den == 0 {
		return 0, nil
	}

	return num / den, nil
}

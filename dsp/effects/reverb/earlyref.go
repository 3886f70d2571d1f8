package reverb

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-reverb/dsp/filter/design"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
)

type erChannel struct {
	lpf, hpf onepole.Filter
	taps     delay.Line
	tapPos   [numERTaps]int
	tapGain  [numERTaps]float64
	cross    delay.Line
	crossAP  biquad.Section
	outAP    biquad.Section
}

// earlyReflections runs at the stream rate. Each channel feeds an 18-tap
// delay; the other channel's tap sum reaches it through a short delay and
// an all-pass, and the width control blends the two.
type earlyReflections struct {
	ch         [2]erChannel
	wet1, wet2 float64
}

func (e *earlyReflections) carve(a *buffer.Arena, l *layout) error {
	for c := range e.ch {
		s, err := a.Span(l.ch[c].erTaps)
		if err != nil {
			return err
		}

		e.ch[c].taps = delay.FromSpan(s)

		s, err = a.Span(l.ch[c].erCross)
		if err != nil {
			return err
		}

		e.ch[c].cross = delay.FromSpan(s)
	}

	return nil
}

func (e *earlyReflections) configure(p *Params, fs float64) {
	e.wet1 = (1 + p.ERWidth) / 2
	e.wet2 = (1 - p.ERWidth) / 2

	for c := range e.ch {
		ch := &e.ch[c]
		ch.lpf.SetLowpass(math.Min(erInputLPF, maxCutoffRatio*fs), fs)
		ch.hpf.SetHighpass(erInputHPF, fs)

		var norm float64
		for _, g := range erGains[c] {
			norm += g * g
		}

		norm = 1 / math.Sqrt(norm)

		longest := 0
		for k, t := range erTimes[c] {
			ch.tapPos[k] = int(math.Round(t * p.ERFactor * fs))
			ch.tapGain[k] = erGains[c][k] * norm
			longest = max(longest, ch.tapPos[k])
		}

		ch.taps.SetSize(longest + 1)
		for k := range ch.tapPos {
			ch.tapPos[k] = min(max(ch.tapPos[k], 0), ch.taps.Size()-1)
		}

		ch.cross.SetSize(int(math.Round(erCrossDelay * p.ERFactor * fs)))
		ch.crossAP.SetCoefficients(design.AllpassBW(erCrossAPFreq, erCrossAPBW, fs))
		ch.outAP.SetCoefficients(design.AllpassBW(erOutAPFreq, erOutAPBW, fs))
	}
}

func (e *earlyReflections) process(inL, inR float64) (float64, float64) {
	in := [2]float64{inL, inR}

	var own [2]float64
	for c := range e.ch {
		ch := &e.ch[c]
		ch.taps.Write(ch.hpf.ProcessSample(ch.lpf.ProcessSample(in[c])))

		var sum float64
		for k, pos := range ch.tapPos {
			sum += ch.tapGain[k] * ch.taps.Tap(pos)
		}

		own[c] = sum
	}

	var out [2]float64
	for c := range e.ch {
		ch := &e.ch[c]
		cross := ch.crossAP.ProcessSample(ch.cross.Step(own[1-c]))
		out[c] = ch.outAP.ProcessSample(e.wet1*own[c] + e.wet2*cross)
	}

	return out[0], out[1]
}

func (e *earlyReflections) reset() {
	for c := range e.ch {
		ch := &e.ch[c]
		ch.lpf.Reset()
		ch.hpf.Reset()
		ch.taps.Reset()
		ch.cross.Reset()
		ch.crossAP.Reset()
		ch.outAP.Reset()
	}
}

package reverb

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
	"github.com/cwbudde/algo-reverb/dsp/filter/allpass"
	"github.com/cwbudde/algo-reverb/dsp/filter/biquad"
	"github.com/cwbudde/algo-reverb/dsp/filter/comb"
	"github.com/cwbudde/algo-reverb/dsp/filter/dccut"
	"github.com/cwbudde/algo-reverb/dsp/filter/design"
	"github.com/cwbudde/algo-reverb/dsp/filter/onepole"
	"github.com/cwbudde/algo-reverb/dsp/lfo"
	"github.com/cwbudde/algo-reverb/dsp/signal"
)

// maxCutoffRatio keeps every corner frequency well below Nyquist.
const maxCutoffRatio = 0.45

type resolvedTap struct {
	line   *delay.Line
	offset int
	sign   float64
}

type lateChannel struct {
	dc        dccut.Filter
	inLPF     onepole.Filter
	diffusion [numDiffusers]allpass.Modulated

	cdelay delay.Line
	clpf   onepole.Filter
	cross  [numCrossAPs]allpass.Allpass

	bassAP, bassLP biquad.Section

	dampLP  onepole.Filter
	dampAP1 allpass.Modulated
	dampD   delay.Line
	dampAP2 allpass.Modulated

	cbassD1  delay.Line
	cbassAP1 allpass.Allpass2
	cbassD2  delay.Line
	cbassAP2 allpass.Allpass3

	loopDecay float64

	taps      [numOutTaps]resolvedTap
	comb      comb.Comb
	combNorm  float64
	lastLPF   biquad.Section
	lastDelay delay.Line
}

// lateNetwork is the cross-coupled tank. Each channel diffuses its input,
// adds the decayed output of the other channel's loop, and writes the
// result through damping and bass stages into its own loop delay.
type lateNetwork struct {
	ch [2]lateChannel

	lfo1, lfo2       lfo.LFO
	lfo1LPF, lfo2LPF onepole.Filter
	noise            signal.FractalNoise

	wander    float64
	bassBoost float64
}

func (n *lateNetwork) carve(a *buffer.Arena, l *layout) error {
	line := func(capacity int) (delay.Line, error) {
		s, err := a.Span(capacity)
		if err != nil {
			return delay.Line{}, err
		}

		return delay.FromSpan(s), nil
	}

	for c := range n.ch {
		ch, cl := &n.ch[c], &l.ch[c]

		var err error
		for i, capacity := range cl.diffusion {
			s, err := a.Span(capacity)
			if err != nil {
				return err
			}

			ch.diffusion[i] = allpass.ModulatedFromSpan(s)
		}

		if ch.cdelay, err = line(cl.cdelay); err != nil {
			return err
		}

		for i, capacity := range cl.cross {
			s, err := a.Span(capacity)
			if err != nil {
				return err
			}

			ch.cross[i] = allpass.FromSpan(s)
		}

		s, err := a.Span(cl.dampAP1)
		if err != nil {
			return err
		}

		ch.dampAP1 = allpass.ModulatedFromSpan(s)

		if ch.dampD, err = line(cl.dampD); err != nil {
			return err
		}

		if s, err = a.Span(cl.dampAP2); err != nil {
			return err
		}

		ch.dampAP2 = allpass.ModulatedFromSpan(s)

		if ch.cbassD1, err = line(cl.cbassD1); err != nil {
			return err
		}

		if ch.cbassAP1, err = allpass.NewAllpass2FromArena(a, cl.cbassAP1[0], cl.cbassAP1[1]); err != nil {
			return err
		}

		if ch.cbassD2, err = line(cl.cbassD2); err != nil {
			return err
		}

		if ch.cbassAP2, err = allpass.NewAllpass3FromArena(a, cl.cbassAP2[0], cl.cbassAP2[1], cl.cbassAP2[2]); err != nil {
			return err
		}

		if s, err = a.Span(cl.comb); err != nil {
			return err
		}

		ch.comb = comb.FromSpan(s)

		if ch.lastDelay, err = line(cl.lastDelay); err != nil {
			return err
		}
	}

	s, err := a.Span(l.noise)
	if err != nil {
		return err
	}

	n.noise, err = signal.FractalNoiseFromSpan(s, noiseSeed)

	return err
}

// configure derives every size and coefficient for the internal rate fsi.
func (n *lateNetwork) configure(p *Params, fsi float64) {
	scale := fsi / referenceRate
	samples := func(ref int) int {
		return max(int(math.Round(float64(ref)*scale)), 1)
	}
	cutoff := func(freq float64) float64 {
		return math.Min(freq, maxCutoffRatio*fsi)
	}

	n.wander = p.Wander
	n.bassBoost = p.BassBoost

	n.lfo1.SetFrequency(p.Spin, fsi)
	n.lfo2.SetFrequency(p.Spin*lfo2Ratio, fsi)
	n.lfo1LPF.SetLowpass(spinLimit, fsi)
	n.lfo2LPF.SetLowpass(spinLimit, fsi)

	for c := range n.ch {
		ch, t := &n.ch[c], &lateTable[c]

		ch.dc.SetCutoff(dccut.DefaultCutoff, fsi)
		ch.inLPF.SetLowpass(cutoff(p.InputLPF), fsi)

		for i := range ch.diffusion {
			d := &ch.diffusion[i]
			d.SetSize(samples(t.diffusion[i]), samples(t.diffMod))
			d.SetDecay(1)

			if i < 4 {
				d.SetFeedback(diffusionGainEarly)
			} else {
				d.SetFeedback(diffusionGainLate)
			}
		}

		ch.cdelay.SetSize(samples(t.cdelay))
		ch.clpf.SetLowpass(cutoff(2*p.DampLPF), fsi)

		for i := range ch.cross {
			ap := &ch.cross[i]
			ap.SetSize(samples(t.cross[i]))
			ap.SetFeedback(crossAPGain)
			ap.SetRT60(p.RT60, fsi)
		}

		ch.bassAP.SetCoefficients(design.AllpassBW(cutoff(p.BassLPF), bassFilterBW, fsi))
		ch.bassLP.SetCoefficients(design.LowpassBW(cutoff(p.BassLPF), bassFilterBW, fsi))

		ch.dampLP.SetLowpass(cutoff(p.DampLPF), fsi)
		ch.dampAP1.SetSize(samples(t.dampAP1.size), samples(t.dampAP1.msize))
		ch.dampAP1.SetFeedback(dampAPGain)
		ch.dampAP1.SetRT60(p.RT60, fsi)
		ch.dampD.SetSize(samples(t.dampD))
		ch.dampAP2.SetSize(samples(t.dampAP2.size), samples(t.dampAP2.msize))
		ch.dampAP2.SetFeedback(dampAPGain)
		ch.dampAP2.SetRT60(p.RT60, fsi)

		ch.cbassD1.SetSize(samples(t.cbassD1))
		for i := range ch.cbassAP1.Stages {
			ch.cbassAP1.Stages[i].SetSize(samples(t.cbassAP1[i]))
			ch.cbassAP1.Stages[i].SetFeedback(bassAPGain)
		}

		ch.cbassAP1.SetRT60(p.RT60, fsi)
		ch.cbassD2.SetSize(samples(t.cbassD2))
		ch.cbassAP2.First.SetSize(samples(t.cbassAP2.size), samples(t.cbassAP2.msize))
		ch.cbassAP2.First.SetFeedback(bassAPGain)
		for i := range ch.cbassAP2.Stages {
			ch.cbassAP2.Stages[i].SetSize(samples(t.cbassAP2b[i]))
			ch.cbassAP2.Stages[i].SetFeedback(bassAPGain)
		}

		ch.cbassAP2.SetRT60(p.RT60, fsi)

		ch.comb.SetSize(samples(t.comb))
		ch.lastLPF.SetCoefficients(design.LowpassBW(cutoff(p.OutputLPF), outputFilterBW, fsi))
		ch.lastDelay.SetSize(samples(t.lastDelay))
	}

	// Both loops are sized before the decays and taps are resolved, since
	// each channel reads the other's delays.
	for c := range n.ch {
		ch, other := &n.ch[c], &n.ch[1-c]

		loop := other.cdelay.Size() + ch.dampD.Size() + ch.cbassD1.Size() + ch.cbassD2.Size()
		ch.loopDecay = core.DecayGain(float64(loop), p.RT60, fsi)

		fb := combFeedback * ch.loopDecay
		ch.comb.SetFeedback(fb)
		ch.combNorm = math.Sqrt(1 - fb*fb)

		for i, tap := range outTapTable[c] {
			src := ch
			if tap.other {
				src = other
			}

			l := src.tapLine(tap.src)
			ch.taps[i] = resolvedTap{
				line:   l,
				offset: min(samples(tap.offset), l.Size()-1),
				sign:   tap.sign,
			}
		}
	}
}

func (c *lateChannel) tapLine(src tapSource) *delay.Line {
	switch src {
	case tapDampD:
		return &c.dampD
	case tapCBassD1:
		return &c.cbassD1
	case tapCBassD2:
		return &c.cbassD2
	default:
		return &c.cdelay
	}
}

// diffuse runs the input conditioning and the diffuser chain.
func (c *lateChannel) diffuse(x, mod float64) float64 {
	x = c.inLPF.ProcessSample(c.dc.ProcessSample(x))
	for i := range c.diffusion {
		x = c.diffusion[i].ProcessSample(x, mod)
	}

	return x
}

// recirculate runs the loop body and closes it into cdelay.
func (c *lateChannel) recirculate(x, mod1, mod2, bassBoost float64) {
	for i := range c.cross {
		x = c.cross[i].ProcessSample(x)
	}

	x = (x + bassBoost*c.bassLP.ProcessSample(c.bassAP.ProcessSample(x))) / (1 + bassBoost)

	x = c.dampLP.ProcessSample(x)
	x = c.dampAP1.ProcessSample(x, mod2)
	x = c.dampD.Step(x)
	x = c.dampAP2.ProcessSample(x, 1-mod2)

	x = c.cbassD1.Step(x)
	x = c.cbassAP1.ProcessSample(x)
	x = c.cbassD2.Step(x)
	x = c.cbassAP2.ProcessSample(x, mod1)

	c.cdelay.Write(x)
}

var outTapNorm = 1 / math.Sqrt(numOutTaps)

func (c *lateChannel) output() float64 {
	var sum float64
	for _, t := range c.taps {
		sum += t.sign * t.line.Tap(t.offset)
	}

	y := c.combNorm * c.comb.ProcessSample(sum*outTapNorm)
	y = c.lastLPF.ProcessSample(y)

	return c.lastDelay.Step(y)
}

// process advances the tank by one internal sample.
func (n *lateNetwork) process(inL, inR float64) (float64, float64) {
	nz := n.noise.Next()
	m1 := n.lfo1LPF.ProcessSample(n.lfo1.Next() + noiseModAmount*nz)
	m2 := n.lfo2LPF.ProcessSample(n.lfo2.Next() - noiseModAmount*nz)

	depth := 0.5 * n.wander
	mod1 := [2]float64{0.5 + depth*m1, 0.5 - depth*m1}
	mod2 := [2]float64{0.5 + depth*m2, 0.5 - depth*m2}

	l, r := &n.ch[0], &n.ch[1]
	xl := l.diffuse(inL, mod1[0])
	xr := r.diffuse(inR, mod1[1])

	// Read both feedback paths before either loop writes.
	fbl := l.loopDecay * l.clpf.ProcessSample(r.cdelay.Oldest())
	fbr := r.loopDecay * r.clpf.ProcessSample(l.cdelay.Oldest())

	l.recirculate(xl+fbl, mod1[0], mod2[0], n.bassBoost)
	r.recirculate(xr+fbr, mod1[1], mod2[1], n.bassBoost)

	return l.output(), r.output()
}

func (n *lateNetwork) reset() {
	n.lfo1.Reset()
	n.lfo2.Reset()
	n.lfo1LPF.Reset()
	n.lfo2LPF.Reset()
	n.noise.Reset()

	for c := range n.ch {
		ch := &n.ch[c]
		ch.dc.Reset()
		ch.inLPF.Reset()

		for i := range ch.diffusion {
			ch.diffusion[i].Reset()
		}

		ch.cdelay.Reset()
		ch.clpf.Reset()

		for i := range ch.cross {
			ch.cross[i].Reset()
		}

		ch.bassAP.Reset()
		ch.bassLP.Reset()
		ch.dampLP.Reset()
		ch.dampAP1.Reset()
		ch.dampD.Reset()
		ch.dampAP2.Reset()
		ch.cbassD1.Reset()
		ch.cbassAP1.Reset()
		ch.cbassD2.Reset()
		ch.cbassAP2.Reset()
		ch.comb.Reset()
		ch.lastLPF.Reset()
		ch.lastDelay.Reset()
	}
}

package reverb

import (
	"math"

	"github.com/cwbudde/algo-reverb/dsp/filter/allpass"
	"github.com/cwbudde/algo-reverb/dsp/signal"
)

// slack covers rounding between the capacity and the size derived later.
const slack = 2

// channelLayout holds the storage capacity of every delay role of one
// channel, fixed for the engine's lifetime.
type channelLayout struct {
	diffusion [numDiffusers]int
	cdelay    int
	cross     [numCrossAPs]int
	dampAP1   int
	dampD     int
	dampAP2   int
	cbassD1   int
	cbassAP1  [2]int
	cbassD2   int
	cbassAP2  [3]int
	comb      int
	lastDelay int

	erTaps   int
	erCross  int
	preDelay int
	dryDelay int
}

type layout struct {
	ch    [2]channelLayout
	noise int
}

func newLayout(maxRate float64) layout {
	scaled := func(ref int) int {
		return int(math.Ceil(float64(ref) * maxRate / referenceRate))
	}
	plain := func(ref int) int {
		return scaled(ref) + slack
	}
	modulated := func(m modDelay) int {
		return allpass.ModulatedCapacity(scaled(m.size), scaled(m.msize))
	}
	seconds := func(s float64) int {
		return int(math.Ceil(s*maxRate)) + slack
	}

	var l layout
	for c, t := range lateTable {
		cl := &l.ch[c]
		for i, d := range t.diffusion {
			cl.diffusion[i] = modulated(modDelay{d, t.diffMod})
		}

		cl.cdelay = plain(t.cdelay)
		for i, d := range t.cross {
			cl.cross[i] = plain(d)
		}

		cl.dampAP1 = modulated(t.dampAP1)
		cl.dampD = plain(t.dampD)
		cl.dampAP2 = modulated(t.dampAP2)
		cl.cbassD1 = plain(t.cbassD1)
		cl.cbassAP1 = [2]int{plain(t.cbassAP1[0]), plain(t.cbassAP1[1])}
		cl.cbassD2 = plain(t.cbassD2)
		cl.cbassAP2 = [3]int{modulated(t.cbassAP2), plain(t.cbassAP2b[0]), plain(t.cbassAP2b[1])}
		cl.comb = plain(t.comb)
		cl.lastDelay = plain(t.lastDelay)

		cl.erTaps = seconds(erMaxTime * MaxERFactor)
		cl.erCross = seconds(erCrossDelay * MaxERFactor)
		cl.preDelay = seconds(MaxDelay)
		cl.dryDelay = seconds(MaxDelay)
	}

	l.noise = signal.FractalNoiseSize

	return l
}

func (c *channelLayout) total() int {
	n := c.cdelay + c.dampAP1 + c.dampD + c.dampAP2 + c.cbassD1 + c.cbassD2 +
		c.comb + c.lastDelay + c.erTaps + c.erCross + c.preDelay + c.dryDelay
	for _, v := range c.diffusion {
		n += v
	}

	for _, v := range c.cross {
		n += v
	}

	for _, v := range c.cbassAP1 {
		n += v
	}

	for _, v := range c.cbassAP2 {
		n += v
	}

	return n
}

// total is the arena size the layout needs.
func (l *layout) total() int {
	return l.ch[0].total() + l.ch[1].total() + l.noise
}

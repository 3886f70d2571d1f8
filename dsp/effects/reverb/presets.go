package reverb

import (
	"fmt"
	"strings"
)

// PresetID names one of the built-in parameter sets.
type PresetID int

// Built-in presets.
const (
	PresetDefault PresetID = iota
	PresetSmallHall1
	PresetSmallHall2
	PresetMediumHall1
	PresetMediumHall2
	PresetLargeHall1
	PresetLargeHall2
	PresetSmallRoom1
	PresetSmallRoom2
	PresetMediumRoom1
	PresetMediumRoom2
	PresetLargeRoom1
	PresetLargeRoom2
	PresetMediumER1
	PresetMediumER2
	PresetPlateHigh
	PresetPlateLow
	PresetLongReverb1
	PresetLongReverb2

	numPresets
)

var presetNames = [numPresets]string{
	"default",
	"smallhall1", "smallhall2",
	"mediumhall1", "mediumhall2",
	"largehall1", "largehall2",
	"smallroom1", "smallroom2",
	"mediumroom1", "mediumroom2",
	"largeroom1", "largeroom2",
	"mediumer1", "mediumer2",
	"platehigh", "platelow",
	"longreverb1", "longreverb2",
}

// Values in Params.Environment order.
var presetTable = [numPresets][17]float64{
	PresetDefault:     {1, .4, -9, -7, 1.6, .7, 1, -8, .3, .1, .7, 18000, 600, 9000, 17000, 3.2, .002},
	PresetSmallHall1:  {2, .3, -9, 0, 1, 1, .8, -9, .3, .15, .7, 18000, 500, 8000, 18000, 1.8, 0},
	PresetSmallHall2:  {2, .3, -7, 0, 1, .8, .9, -10, .4, .2, .9, 16000, 500, 7000, 16000, 2, .002},
	PresetMediumHall1: {2, .4, -9, 0, 1.4, .9, .9, -9, .3, .2, .6, 17000, 450, 7500, 17000, 2.8, .004},
	PresetMediumHall2: {2, .4, -8, 0, 1.4, .7, 1, -9, .45, .25, .8, 15000, 450, 6500, 15000, 3.2, .006},
	PresetLargeHall1:  {2, .5, -10, 0, 1.9, .9, 1, -8, .3, .2, .5, 16000, 400, 6000, 16000, 4.5, .01},
	PresetLargeHall2:  {2, .5, -9, 0, 2.1, .6, 1, -8, .5, .3, .8, 14000, 400, 5000, 14000, 6, .015},
	PresetSmallRoom1:  {1, .2, -6, 0, .6, 1, .7, -14, .2, .05, 1, 18000, 700, 12000, 18000, .5, 0},
	PresetSmallRoom2:  {1, .25, -5, 0, .7, .8, .8, -13, .25, .1, 1.2, 16000, 650, 9000, 16000, .7, 0},
	PresetMediumRoom1: {1, .3, -7, 0, .9, .9, .8, -12, .25, .1, .9, 17000, 600, 10000, 17000, .9, .002},
	PresetMediumRoom2: {1, .3, -6, 0, 1, .7, .9, -11, .3, .15, 1.1, 15000, 600, 8000, 15000, 1.2, .002},
	PresetLargeRoom1:  {2, .35, -8, 0, 1.2, .9, .9, -10, .3, .15, .8, 17000, 550, 9000, 17000, 1.5, .004},
	PresetLargeRoom2:  {2, .35, -7, 0, 1.3, .6, 1, -10, .35, .2, 1, 14000, 550, 7000, 14000, 1.9, .005},
	PresetMediumER1:   {1, 0, 0, 0, 1, 1, .8, -70, .1, 0, .5, 18000, 600, 10000, 18000, .4, 0},
	PresetMediumER2:   {1, 0, 0, 0, 1.5, .5, .8, -70, .1, 0, .5, 15000, 600, 8000, 15000, .4, 0},
	PresetPlateHigh:   {2, .1, -15, 0, .5, 1, 1, -7, .5, 0, 2, 18000, 800, 14000, 18000, 2.2, 0},
	PresetPlateLow:    {2, .1, -15, 0, .5, 1, 1, -7, .5, .3, 1.5, 12000, 300, 6000, 12000, 2.6, 0},
	PresetLongReverb1: {2, .5, -12, 0, 2.3, .9, 1, -7, .4, .2, .4, 16000, 400, 5000, 16000, 12, .02},
	PresetLongReverb2: {2, .5, -10, 0, 2.5, .7, 1, -6, .55, .35, .6, 14000, 350, 4000, 14000, 25, .03},
}

// Valid reports whether id names a built-in preset.
func (id PresetID) Valid() bool {
	return id >= 0 && id < numPresets
}

func (id PresetID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("PresetID(%d)", int(id))
	}

	return presetNames[id]
}

// Params returns the preset's values at sampleRate.
func (id PresetID) Params(sampleRate float64) (Params, error) {
	if !id.Valid() {
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownPreset, int(id))
	}

	return ParamsFromEnvironment(sampleRate, presetTable[id]), nil
}

// Presets lists every built-in preset in id order.
func Presets() []PresetID {
	ids := make([]PresetID, numPresets)
	for i := range ids {
		ids[i] = PresetID(i)
	}

	return ids
}

// ParsePreset looks a preset up by name. Case, spaces, dashes and
// underscores are ignored, so "Large Hall 1" and "large-hall-1" both match.
func ParsePreset(name string) (PresetID, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}

		return r
	}, strings.ToLower(name))

	for i, n := range presetNames {
		if n == key {
			return PresetID(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

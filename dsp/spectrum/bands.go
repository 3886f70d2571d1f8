package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Floor is returned for bands with no energy.
const Floor = -200.0

const referenceCentre = 1000.0

var ErrNoBands = errors.New("spectrum: no band centres")

// BandCentres returns the base-2 fractional-octave centres anchored at
// 1 kHz that fall inside [lo, hi]. fraction 1 gives octaves, 3 third
// octaves.
func BandCentres(lo, hi float64, fraction int) []float64 {
	if fraction <= 0 || !(lo > 0) || hi < lo {
		return nil
	}

	step := 1 / float64(fraction)
	k0 := math.Ceil(math.Log2(lo/referenceCentre)/step - 1e-9)

	var out []float64
	for k := k0; ; k++ {
		f := referenceCentre * math.Exp2(k*step)
		if f > hi*(1+1e-9) {
			break
		}

		out = append(out, f)
	}

	return out
}

// BandLevels returns |H(f)| in dB for the response h at each centre.
// Centres above Nyquist are an error.
func BandLevels(h []float64, sampleRate float64, centres []float64) ([]float64, error) {
	if len(centres) == 0 {
		return nil, ErrNoBands
	}

	out := make([]float64, len(centres))

	for i, f := range centres {
		g, err := NewGoertzel(f, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}

		g.Process(h)

		out[i] = Floor
		if m := g.Magnitude(); m > 0 {
			out[i] = max(20*math.Log10(m), Floor)
		}
	}

	return out, nil
}

// Relative subtracts the level at index ref from every level.
func Relative(levels []float64, ref int) []float64 {
	out := make([]float64, len(levels))
	if ref < 0 || ref >= len(levels) {
		copy(out, levels)
		return out
	}

	for i, v := range levels {
		out[i] = v - levels[ref]
	}

	return out
}

package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
)

// FractalNoiseSize is the default table length of a FractalNoise.
const FractalNoiseSize = 1 << 15

const (
	fractalOctaves     = 9
	fractalPersistence = 0.6
)

// FractalNoise is a looping table of band-limited noise built from several
// octaves of smoothly interpolated random values. The table is generated
// once from a seed and only read afterwards, so two generators with the
// same seed produce identical sequences.
type FractalNoise struct {
	table buffer.Span
	mask  int
	pos   int
}

// NewFractalNoise allocates a FractalNoiseSize table for seed.
func NewFractalNoise(seed int64) *FractalNoise {
	n, _ := FractalNoiseFromSpan(buffer.NewSpan(FractalNoiseSize), seed)
	return &n
}

// FractalNoiseFromSpan fills s with noise for seed. The span capacity must be
// a power of two of at least 16 samples.
func FractalNoiseFromSpan(s buffer.Span, seed int64) (FractalNoise, error) {
	size := s.Cap()
	if size < 16 || size&(size-1) != 0 {
		return FractalNoise{}, fmt.Errorf("fractal noise size must be a power of two >= 16: %d", size)
	}

	s.SetLen(size)
	fillFractal(s.Samples(), seed)

	return FractalNoise{table: s, mask: size - 1}, nil
}

// Len returns the table length.
func (f *FractalNoise) Len() int {
	return f.table.Len()
}

// Next returns the next value in [-1, 1] and advances, wrapping at Len.
func (f *FractalNoise) Next() float64 {
	v := f.table.At(f.pos)
	f.pos = (f.pos + 1) & f.mask

	return v
}

// At returns table entry i modulo Len.
func (f *FractalNoise) At(i int) float64 {
	return f.table.At(i & f.mask)
}

// Reset rewinds to the start of the table.
func (f *FractalNoise) Reset() {
	f.pos = 0
}

func fillFractal(dst []float64, seed int64) {
	clear(dst)

	n := len(dst)
	rng := rand.New(rand.NewSource(seed))
	amp := 1.0

	// Coarse octaves first: the grid step halves and the amplitude shrinks
	// by fractalPersistence each octave.
	step := n / 4
	for range fractalOctaves {
		if step < 1 {
			break
		}

		points := n / step
		first := rng.Float64()*2 - 1
		cur := first

		for p := range points {
			// The last segment ends on the first grid value so the table
			// loops without a seam.
			next := first
			if p < points-1 {
				next = rng.Float64()*2 - 1
			}

			start := p * step
			for i := range step {
				t := float64(i) / float64(step)
				s := t * t * (3 - 2*t)
				dst[start+i] += amp * (cur + s*(next-cur))
			}

			cur = next
		}

		amp *= fractalPersistence
		step /= 2
	}

	var mean float64
	for _, v := range dst {
		mean += v
	}

	mean /= float64(n)

	var peak float64
	for i := range dst {
		dst[i] -= mean
		peak = math.Max(peak, math.Abs(dst[i]))
	}

	if peak == 0 {
		return
	}

	for i := range dst {
		dst[i] /= peak
	}
}

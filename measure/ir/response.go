package ir

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two.
var ErrInvalidFFTSize = errors.New("ir: fft size must be a power of two")

// MagnitudeResponse returns |H(k)| for the fftSize/2+1 bins from DC to
// Nyquist. h is truncated or zero-padded to fftSize. fftSize 0 picks the
// next power of two at or above len(h).
func MagnitudeResponse(h []float64, fftSize int) ([]float64, error) {
	if len(h) == 0 {
		return nil, ErrEmptyIR
	}

	if fftSize == 0 {
		fftSize = 1
		for fftSize < len(h) {
			fftSize <<= 1
		}
	}

	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("ir: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := range min(len(h), fftSize) {
		in[i] = complex(h[i], 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("ir: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

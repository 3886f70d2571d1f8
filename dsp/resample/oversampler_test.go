package resample

import (
	"errors"
	"math"
	"testing"
)

func TestConfigureValidation(t *testing.T) {
	o := NewOversampler()

	if err := o.Configure(0, 48000); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("factor 0: err = %v", err)
	}

	if err := o.Configure(MaxFactor+1, 48000); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("factor 5: err = %v", err)
	}

	if err := o.Configure(2, 0); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("rate 0: err = %v", err)
	}

	if o.Factor() != 1 {
		t.Fatalf("failed Configure changed factor to %d", o.Factor())
	}
}

func TestFactorOneIsTransparent(t *testing.T) {
	o := NewOversampler()
	if err := o.Configure(1, 44100); err != nil {
		t.Fatal(err)
	}

	buf := make([]float64, MaxFactor)
	for _, x := range []float64{0.3, -1, 0.75} {
		o.Up(x, buf)
		if y := o.Down(buf[:1]); y != x {
			t.Fatalf("got %v want %v", y, x)
		}
	}
}

func TestRoundTripDCGain(t *testing.T) {
	for factor := 2; factor <= MaxFactor; factor++ {
		o := NewOversampler()
		if err := o.Configure(factor, 48000); err != nil {
			t.Fatal(err)
		}

		buf := make([]float64, factor)

		var y float64
		for range 4000 {
			o.Up(0.5, buf)
			y = o.Down(buf)
		}

		// Residual image ripple at the base rate is well below -60 dB.
		if math.Abs(y-0.5) > 1e-3 {
			t.Fatalf("factor %d: DC out = %v, want 0.5", factor, y)
		}
	}
}

func TestRoundTripPassesAudioBand(t *testing.T) {
	sr := 48000.0
	o := NewOversampler()
	if err := o.Configure(2, sr); err != nil {
		t.Fatal(err)
	}

	buf := make([]float64, 2)

	var peak float64
	for n := range 9600 {
		o.Up(math.Sin(2*math.Pi*1000*float64(n)/sr), buf)

		y := o.Down(buf)
		if n > 4800 {
			peak = math.Max(peak, math.Abs(y))
		}
	}

	if math.Abs(peak-1) > 0.02 {
		t.Fatalf("1 kHz round-trip peak = %v, want ~1", peak)
	}
}

func TestUpSuppressesImages(t *testing.T) {
	sr := 44100.0
	o := NewOversampler()
	if err := o.Configure(4, sr); err != nil {
		t.Fatal(err)
	}

	// The first image of 1 kHz sits at 44.1k-1k in the internal stream.
	c := o.up.Section(0).Coefficients
	c2 := o.up.Section(1).Coefficients

	atten := c.MagnitudeDB(sr-1000, 4*sr) + c2.MagnitudeDB(sr-1000, 4*sr)
	if atten > -20 {
		t.Fatalf("image attenuation = %v dB, want < -20", atten)
	}
}

func TestReset(t *testing.T) {
	o := NewOversampler()
	_ = o.Configure(3, 48000)

	buf := make([]float64, 3)
	o.Up(1, buf)
	o.Down(buf)
	o.Reset()

	o.Up(0, buf)
	if y := o.Down(buf); y != 0 {
		t.Fatalf("output after reset = %v", y)
	}
}

func TestRedesignKeepsState(t *testing.T) {
	a, b := NewOversampler(), NewOversampler()
	_ = a.Configure(2, 48000)
	_ = b.Configure(2, 48000)

	bufA, bufB := make([]float64, 2), make([]float64, 2)
	step := func(x float64) (float64, float64) {
		a.Up(x, bufA)
		b.Up(x, bufB)

		return a.Down(bufA), b.Down(bufB)
	}

	for i := range 64 {
		step(math.Sin(float64(i) * 0.2))
	}

	b.Redesign(2, 48000)

	for i := range 64 {
		ya, yb := step(0)
		if ya != yb {
			t.Fatalf("sample %d after Redesign: %v vs %v", i, yb, ya)
		}

		if i == 0 && ya == 0 {
			t.Fatal("filters had no state to keep")
		}
	}
}

func TestRedesignClampsFactor(t *testing.T) {
	o := NewOversampler()

	o.Redesign(MaxFactor+3, 48000)
	if o.Factor() != MaxFactor {
		t.Fatalf("factor = %d, want %d", o.Factor(), MaxFactor)
	}

	o.Redesign(0, 48000)
	if o.Factor() != 1 {
		t.Fatalf("factor = %d, want 1", o.Factor())
	}
}

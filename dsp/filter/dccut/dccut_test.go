package dccut

import (
	"math"
	"testing"
)

func TestRemovesDC(t *testing.T) {
	f := New(DefaultCutoff, 48000)

	var y float64
	for range 5 * 48000 {
		y = f.ProcessSample(0.7)
	}

	if math.Abs(y) > 1e-6 {
		t.Fatalf("residual DC = %v", y)
	}
}

func TestPassesAudio(t *testing.T) {
	sr := 48000.0
	f := New(DefaultCutoff, sr)

	var peak float64
	for n := range 48000 {
		y := f.ProcessSample(math.Sin(2 * math.Pi * 1000 * float64(n) / sr))
		if n > 24000 {
			peak = math.Max(peak, math.Abs(y))
		}
	}

	if math.Abs(peak-1) > 0.01 {
		t.Fatalf("1 kHz peak = %v, want ~1", peak)
	}
}

func TestGainFormula(t *testing.T) {
	f := New(5, 44100)
	want := 1 - 2*math.Pi*5/44100

	if math.Abs(f.Gain()-want) > 1e-15 {
		t.Fatalf("gain = %v want %v", f.Gain(), want)
	}

	if New(5, 0).Gain() != 0 {
		t.Fatal("zero rate should give zero gain")
	}
}

func TestReset(t *testing.T) {
	f := New(5, 48000)
	f.ProcessSample(1)
	f.Reset()

	if y := f.ProcessSample(0); y != 0 {
		t.Fatalf("output after reset = %v", y)
	}
}

package lfo

import (
	"math"
	"testing"
)

func TestMatchesSine(t *testing.T) {
	sr := 48000.0
	freq := 3.7
	l := New(freq, sr)

	for n := range 10000 {
		want := math.Sin(2 * math.Pi * freq * float64(n) / sr)
		if got := l.Next(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("n=%d: got %v want %v", n, got, want)
		}
	}
}

func TestAmplitudeStaysUnitOverLongRun(t *testing.T) {
	l := New(0.618, 44100)

	for range 10_000_000 {
		l.Next()
	}

	if r := math.Hypot(l.re, l.im); math.Abs(r-1) > 1e-12 {
		t.Fatalf("radius drifted to %v", r)
	}
}

func TestSetFrequencyKeepsPhase(t *testing.T) {
	l := New(1, 1000)
	for range 100 {
		l.Next()
	}

	before := l.im
	l.SetFrequency(5, 1000)

	if l.im != before {
		t.Fatalf("phase moved: %v -> %v", before, l.im)
	}
}

func TestZeroRateHolds(t *testing.T) {
	l := New(1, 0)
	for range 10 {
		if v := l.Next(); v != 0 {
			t.Fatalf("got %v want 0", v)
		}
	}

	if l.Cos() != 1 {
		t.Fatalf("Cos = %v", l.Cos())
	}
}

func TestReset(t *testing.T) {
	l := New(10, 1000)
	for range 37 {
		l.Next()
	}

	l.Reset()
	if l.Next() != 0 || l.count != 1 {
		t.Fatal("reset did not restart at phase zero")
	}
}

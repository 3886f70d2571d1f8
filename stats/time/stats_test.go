package time

import (
	"math"
	"testing"
)

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.RMS != 0 || s.Peak != 0 {
		t.Fatalf("empty: %+v", s)
	}

	if !math.IsInf(s.RMSdB, -1) || !math.IsInf(s.PeakdB, -1) {
		t.Fatalf("empty dB fields should be -Inf: rms=%v peak=%v", s.RMSdB, s.PeakdB)
	}
}

func TestCalculateSine(t *testing.T) {
	const n = 48000

	x := make([]float64, n)
	for i := range x {
		x[i] = 0.5 * math.Sin(2*math.Pi*100*float64(i)/n)
	}

	s := Calculate(x)

	if math.Abs(s.RMS-0.5/math.Sqrt2) > 1e-6 {
		t.Errorf("RMS = %v, want %v", s.RMS, 0.5/math.Sqrt2)
	}

	if math.Abs(s.Peak-0.5) > 1e-6 {
		t.Errorf("Peak = %v, want 0.5", s.Peak)
	}

	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-4 {
		t.Errorf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}

	if math.Abs(s.DC) > 1e-9 {
		t.Errorf("DC = %v, want 0", s.DC)
	}

	if math.Abs(s.PeakdB-(-6.0206)) > 1e-3 {
		t.Errorf("PeakdB = %v, want -6.02", s.PeakdB)
	}
}

func TestHelpersMatchCalculate(t *testing.T) {
	x := []float64{0.1, -0.7, 0.3, 0.2, -0.05}
	s := Calculate(x)

	if RMS(x) != s.RMS {
		t.Errorf("RMS: %v vs %v", RMS(x), s.RMS)
	}

	if Peak(x) != s.Peak {
		t.Errorf("Peak: %v vs %v", Peak(x), s.Peak)
	}

	if math.Abs(DC(x)-s.DC) > 1e-15 {
		t.Errorf("DC: %v vs %v", DC(x), s.DC)
	}

	if CrestFactor(x) != s.CrestFactor {
		t.Errorf("CrestFactor: %v vs %v", CrestFactor(x), s.CrestFactor)
	}

	if s.PeakPos != 1 {
		t.Errorf("PeakPos = %d, want 1", s.PeakPos)
	}
}

func TestStreamingMatchesBlock(t *testing.T) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = math.Sin(float64(i)*0.37) * math.Exp(-float64(i)/300)
	}

	want := Calculate(x)

	var s StreamingStats
	for i := 0; i < len(x); i += 77 {
		s.Update(x[i:min(i+77, len(x))])
	}

	got := s.Result()

	if got.Length != want.Length || got.PeakPos != want.PeakPos || got.ZeroCrossings != want.ZeroCrossings {
		t.Fatalf("streaming %+v, block %+v", got, want)
	}

	if math.Abs(got.RMS-want.RMS) > 1e-12 {
		t.Fatalf("RMS: %v vs %v", got.RMS, want.RMS)
	}
}

func TestNonFiniteSamplesCounted(t *testing.T) {
	s := Calculate([]float64{0.5, math.NaN(), math.Inf(1), -0.25})

	if s.NonFinite != 2 {
		t.Fatalf("NonFinite = %d, want 2", s.NonFinite)
	}

	if s.Length != 2 || s.Peak != 0.5 {
		t.Fatalf("finite part: length %d peak %v", s.Length, s.Peak)
	}
}

func TestStreamingReset(t *testing.T) {
	s := NewStreamingStats()
	s.Update([]float64{1, 2, 3})
	s.Reset()

	if r := s.Result(); r.Length != 0 || r.Peak != 0 {
		t.Fatalf("after reset: %+v", r)
	}
}

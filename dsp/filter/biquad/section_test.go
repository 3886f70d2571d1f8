package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var testCoeffs = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func TestIdentityPassesThrough(t *testing.T) {
	s := NewSection(Identity())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); y != x {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSampleHandTraced(t *testing.T) {
	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55, d0=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.048, d1=-0.014
	// n=3: y=0.048
	s := NewSection(testCoeffs)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

	ref := NewSection(testCoeffs)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	blk := NewSection(testCoeffs)
	buf := append([]float64(nil), input...)
	blk.ProcessBlock(buf)

	to := NewSection(testCoeffs)
	dst := make([]float64, len(input))
	to.ProcessBlockTo(dst, input)

	for i := range want {
		if !almostEqual(buf[i], want[i], eps) {
			t.Errorf("ProcessBlock[%d]=%.15f want %.15f", i, buf[i], want[i])
		}
		if !almostEqual(dst[i], want[i], eps) {
			t.Errorf("ProcessBlockTo[%d]=%.15f want %.15f", i, dst[i], want[i])
		}
	}

	if input[0] != 1 || input[3] != 0.7 {
		t.Fatal("ProcessBlockTo modified src")
	}
}

func TestSetCoefficientsKeepsState(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	before := s.State()

	s.SetCoefficients(Identity())
	if s.State() != before {
		t.Fatalf("state changed: %v -> %v", before, s.State())
	}
}

func TestResetAndStateRoundTrip(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()

	y3 := s.ProcessSample(-0.3)

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state not zero after reset: %v", s.State())
	}

	s.SetState(saved)
	if y := s.ProcessSample(-0.3); !almostEqual(y, y3, eps) {
		t.Fatalf("after restore: got %v want %v", y, y3)
	}
}

func TestDecayFlushesToExactZero(t *testing.T) {
	s := NewSection(testCoeffs)
	s.ProcessSample(1)

	for range 10000 {
		s.ProcessSample(0)
	}

	if s.State() != [2]float64{} {
		t.Fatalf("state did not flush: %v", s.State())
	}
}

func TestStable(t *testing.T) {
	if !testCoeffs.Stable() {
		t.Fatal("test coefficients should be stable")
	}

	unstable := Coefficients{B0: 1, A1: -2.1, A2: 1.1}
	if unstable.Stable() {
		t.Fatal("expected unstable")
	}
}

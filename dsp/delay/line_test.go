package delay

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for capacity=0")
	}

	if _, err := New(-1); err == nil {
		t.Fatal("expected error for capacity=-1")
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if d.Size() != 16 || d.Cap() != 16 {
		t.Fatalf("size/cap: got %d/%d want 16/16", d.Size(), d.Cap())
	}
}

func TestFromArenaSpan(t *testing.T) {
	a := buffer.NewArena(32)
	l := FromSpan(a.MustSpan(8))

	if l.Cap() != 8 {
		t.Fatalf("Cap: got %d want 8", l.Cap())
	}

	for i := 0; i < 20; i++ {
		l.Write(float64(i))
	}

	if a.Used() != 8 {
		t.Fatalf("arena used: got %d want 8", a.Used())
	}
}

// --- integer access ---

func TestStepIsPureDelay(t *testing.T) {
	d, _ := New(5)

	for i := 0; i < 20; i++ {
		got := d.Step(float64(i + 1))

		want := 0.0
		if i >= 5 {
			want = float64(i + 1 - 5)
		}

		if got != want {
			t.Fatalf("step %d: got %v want %v", i, got, want)
		}
	}
}

func TestTapOrdering(t *testing.T) {
	d, _ := New(4)
	for i := 1; i <= 6; i++ {
		d.Write(float64(i))
	}

	// Newest first: 6, 5, 4, 3.
	for k, want := range []float64{6, 5, 4, 3} {
		if got := d.Tap(k); got != want {
			t.Fatalf("Tap(%d): got %v want %v", k, got, want)
		}
	}

	if d.Oldest() != 3 {
		t.Fatalf("Oldest: got %v want 3", d.Oldest())
	}
}

// --- size changes ---

func TestSetSizeClamps(t *testing.T) {
	d, _ := New(8)

	if clamped := d.SetSize(100); !clamped || d.Size() != 8 {
		t.Fatalf("SetSize(100): clamped=%v size=%d", clamped, d.Size())
	}

	if clamped := d.SetSize(0); !clamped || d.Size() != 1 {
		t.Fatalf("SetSize(0): clamped=%v size=%d", clamped, d.Size())
	}

	if clamped := d.SetSize(3); clamped || d.Size() != 3 {
		t.Fatalf("SetSize(3): clamped=%v size=%d", clamped, d.Size())
	}
}

func TestSetSizeShortensDelay(t *testing.T) {
	d, _ := New(16)
	d.SetSize(3)
	d.Reset()

	out := make([]float64, 6)
	for i := range out {
		out[i] = d.Step(float64(i + 1))
	}

	want := []float64{0, 0, 0, 1, 2, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]: got %v want %v", i, out[i], want[i])
		}
	}
}

// --- fractional reads ---

func TestReadFractionalIntegerMatchesTap(t *testing.T) {
	d, _ := New(16)
	for i := 0; i < 16; i++ {
		d.Write(math.Sin(float64(i) * 0.3))
	}

	for k := 1; k < 12; k++ {
		if !approxEqual(d.ReadFractional(float64(k)), d.Tap(k), 1e-12) {
			t.Fatalf("offset %d: fractional %v tap %v", k, d.ReadFractional(float64(k)), d.Tap(k))
		}
	}
}

func TestReadFractionalRamp(t *testing.T) {
	d, _ := New(32)
	for i := 0; i < 32; i++ {
		d.Write(float64(i))
	}

	// On a linear ramp the cubic is exact: Tap(k) = 31-k.
	got := d.ReadFractional(4.25)
	if !approxEqual(got, 31-4.25, 1e-9) {
		t.Fatalf("ramp: got %v want %v", got, 31-4.25)
	}
}

func TestReadFractionalClampsOffset(t *testing.T) {
	d, _ := New(8)
	for i := 0; i < 8; i++ {
		d.Write(float64(i))
	}

	if got := d.ReadFractional(-3); got != d.Tap(0) {
		t.Fatalf("negative offset: got %v want %v", got, d.Tap(0))
	}

	if got := d.ReadFractional(100); !approxEqual(got, d.Tap(5), 1e-12) {
		t.Fatalf("large offset: got %v want %v", got, d.Tap(5))
	}
}

func TestReset(t *testing.T) {
	d, _ := New(4)
	for i := 0; i < 4; i++ {
		d.Write(1)
	}

	d.Reset()

	for k := 0; k < 4; k++ {
		if d.Tap(k) != 0 {
			t.Fatalf("Tap(%d) after reset: %v", k, d.Tap(k))
		}
	}
}

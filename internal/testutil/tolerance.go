package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is more than eps apart.
func RequireSliceNearlyEqual(t require.TestingT, got, want []float64, eps float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.Len(t, got, len(want))

	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFinite fails t at the first NaN or Inf.
func RequireFinite(t require.TestingT, data []float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		maxDiff = max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	var e float64
	for _, v := range x {
		e += v * v
	}

	return e
}

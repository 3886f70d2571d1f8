package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures failures instead of stopping the test.
type recorder struct {
	failed bool
}

func (r *recorder) Errorf(string, ...any) { r.failed = true }
func (r *recorder) FailNow()              { panic(r) }

func fails(f func(t require.TestingT)) (failed bool) {
	r := &recorder{}

	defer func() {
		if v := recover(); v != nil && v != any(r) {
			panic(v)
		}

		failed = r.failed
	}()

	f(r)

	return r.failed
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, d, 1e-15)

	d, err = MaxAbsDiff([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = MaxAbsDiff([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
}

func TestEnergy(t *testing.T) {
	assert.Equal(t, 14.0, Energy([]float64{1, -2, 3}))
	assert.Zero(t, Energy(nil))
}

func TestRequireFinite(t *testing.T) {
	assert.False(t, fails(func(t require.TestingT) { RequireFinite(t, []float64{0, 1, -1}) }))
	assert.True(t, fails(func(t require.TestingT) { RequireFinite(t, []float64{0, math.NaN()}) }))
	assert.True(t, fails(func(t require.TestingT) { RequireFinite(t, []float64{math.Inf(-1)}) }))
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	assert.False(t, fails(func(t require.TestingT) {
		RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.001, 2}, 0.01)
	}))
	assert.True(t, fails(func(t require.TestingT) {
		RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.1, 2}, 0.01)
	}))
	assert.True(t, fails(func(t require.TestingT) {
		RequireSliceNearlyEqual(t, []float64{1}, []float64{1, 2}, 0.01)
	}))
}

package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finmath/interp"
)

func zigzagSpline(t *testing.T) *interp.CubicSpline {
	t.Helper()
	s, err := interp.NewCubicSpline([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	return s
}

func TestCubicSplineInterpolatesKnots(t *testing.T) {
	t.Parallel()

	s := zigzagSpline(t)
	for i, x := range []float64{0, 1, 2, 3} {
		got, err := s.Evaluate(x)
		require.NoError(t, err)
		assert.InDelta(t, []float64{0, 1, 0, 1}[i], got, 1e-12, "knot x=%g", x)
	}
}

func TestCubicSplineMidpoints(t *testing.T) {
	t.Parallel()

	// Closed-form values for the natural spline through (0,0) (1,1) (2,0)
	// (3,1): the tridiagonal solve gives c = {0, -2, 2, 0}.
	s := zigzagSpline(t)

	tests := []struct {
		x, want float64
	}{
		{0.5, 0.75},
		{1.5, 0.5},
		{2.5, 0.25},
	}
	for _, tt := range tests {
		got, err := s.Evaluate(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "x=%g", tt.x)
	}
}

func TestCubicSplineLinearData(t *testing.T) {
	t.Parallel()

	// A natural spline through collinear points reproduces the line.
	s, err := interp.NewCubicSpline([]float64{0, 1, 2, 4}, []float64{1, 3, 5, 9})
	require.NoError(t, err)

	for _, x := range []float64{0.25, 1.7, 3.3, 4} {
		got, err := s.Evaluate(x)
		require.NoError(t, err)
		assert.InDelta(t, 2*x+1, got, 1e-9, "x=%g", x)
	}
}

func TestCubicSplineTwoKnots(t *testing.T) {
	t.Parallel()

	// With two knots the natural spline degenerates to a straight segment.
	s, err := interp.NewCubicSpline([]float64{0, 2}, []float64{0, 4})
	require.NoError(t, err)

	got, err := s.Evaluate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestCubicSplineOutOfRange(t *testing.T) {
	t.Parallel()

	s := zigzagSpline(t)

	_, err := s.Evaluate(-0.1)
	assert.ErrorIs(t, err, interp.ErrOutOfRange)
	_, err = s.Evaluate(3.1)
	assert.ErrorIs(t, err, interp.ErrOutOfRange)

	// Domain endpoints themselves are inside.
	_, err = s.Evaluate(0)
	assert.NoError(t, err)
	_, err = s.Evaluate(3)
	assert.NoError(t, err)
}

func TestCubicSplineConstruction(t *testing.T) {
	t.Parallel()

	_, err := interp.NewCubicSpline([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, interp.ErrMinimalSize)

	_, err = interp.NewCubicSpline([]float64{0, 0, 1}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, interp.ErrNonIncreasingAxis)
}

func TestCubicSplineContinuity(t *testing.T) {
	t.Parallel()

	// Values approaching a knot from both sides agree to first order.
	s := zigzagSpline(t)

	const eps = 1e-7
	left, err := s.Evaluate(1 - eps)
	require.NoError(t, err)
	right, err := s.Evaluate(1 + eps)
	require.NoError(t, err)
	assert.InDelta(t, left, right, 1e-5)
}

func TestInterpolatorInterface(t *testing.T) {
	t.Parallel()

	var itp interp.Interpolator

	itp = zigzagSpline(t)
	assert.Equal(t, 0.0, itp.XMin())
	assert.Equal(t, 3.0, itp.XMax())

	l, err := interp.NewLinear([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	itp = l
	assert.Equal(t, 1.0, itp.XMin())
	assert.Equal(t, 2.0, itp.XMax())
}

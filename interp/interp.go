// Package interp fits and evaluates continuous functions over an ordered set
// of (x, y) pairs. Two interpolation kinds are provided: piecewise linear and
// natural cubic spline. Both evaluate only inside the closed range of the
// fitted axis.
package interp

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrMinimalSize is returned when fewer than two points are supplied.
	ErrMinimalSize = errors.New("interpolation needs at least 2 points")

	// ErrNonIncreasingAxis is returned when the independent axis is not
	// strictly increasing.
	ErrNonIncreasingAxis = errors.New("the x-axis must be strictly increasing")

	// ErrOutOfRange is returned when an evaluation point lies outside the
	// fitted [XMin, XMax] range.
	ErrOutOfRange = errors.New("value out of the interpolation range")
)

// Interpolator reads a point off a fitted curve.
type Interpolator interface {
	Evaluate(x float64) (float64, error)
	XMin() float64
	XMax() float64
}

// Axis is a validated ordered mapping of independent to dependent values.
// It is immutable after construction.
type Axis struct {
	xs []float64
	ys []float64
}

func newAxis(xs, ys []float64) (Axis, error) {
	if len(xs) != len(ys) {
		return Axis{}, fmt.Errorf("axis lengths differ: %d x-values, %d y-values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Axis{}, fmt.Errorf("%w (got %d)", ErrMinimalSize, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i-1] >= xs[i] {
			return Axis{}, fmt.Errorf("%w (x[%d]=%g, x[%d]=%g)", ErrNonIncreasingAxis, i-1, xs[i-1], i, xs[i])
		}
	}
	return Axis{xs: slices.Clone(xs), ys: slices.Clone(ys)}, nil
}

// Xs returns a copy of the independent axis.
func (a Axis) Xs() []float64 { return slices.Clone(a.xs) }

// Ys returns a copy of the dependent axis.
func (a Axis) Ys() []float64 { return slices.Clone(a.ys) }

// XMin returns the smallest x value of the axis.
func (a Axis) XMin() float64 { return a.xs[0] }

// XMax returns the largest x value of the axis.
func (a Axis) XMax() float64 { return a.xs[len(a.xs)-1] }

// checkRange rejects evaluation points outside the closed fitted range.
func (a Axis) checkRange(x float64) error {
	if x < a.XMin() || x > a.XMax() {
		return fmt.Errorf("%w (x=%g, range [%g, %g])", ErrOutOfRange, x, a.XMin(), a.XMax())
	}
	return nil
}

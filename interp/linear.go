package interp

import "fmt"

// Linear is a piecewise-linear interpolator.
type Linear struct {
	Axis
}

// NewLinear fits a piecewise-linear curve through the given points. The xs
// must be strictly increasing and at least two points are required.
func NewLinear(xs, ys []float64) (*Linear, error) {
	axis, err := newAxis(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	return &Linear{Axis: axis}, nil
}

// Evaluate returns the linear interpolation of x over its bracketing segment.
// Segments are closed intervals scanned left to right, so x equal to the
// upper bound resolves against the last segment and returns its right
// endpoint exactly.
func (l *Linear) Evaluate(x float64) (float64, error) {
	if err := l.checkRange(x); err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}
	for i := 1; i < len(l.xs); i++ {
		if x >= l.xs[i-1] && x <= l.xs[i] {
			x0, y0 := l.xs[i-1], l.ys[i-1]
			x1, y1 := l.xs[i], l.ys[i]
			return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
		}
	}
	// Unreachable: checkRange guarantees a bracketing segment exists.
	return 0, fmt.Errorf("Evaluate: %w (x=%g)", ErrOutOfRange, x)
}

package interp

import "fmt"

// CubicSpline is a natural cubic spline interpolator: piecewise cubic with
// continuous first and second derivatives and zero second derivative at both
// end knots.
type CubicSpline struct {
	Axis
	// Segment i evaluates to a[i] + b[i]*dx + c[i]*dx^2 + d[i]*dx^3 at
	// dx = x - xs[i].
	a, b, c, d []float64
}

// NewCubicSpline fits a natural cubic spline through the given points,
// precomputing the per-segment polynomial coefficients once at construction.
func NewCubicSpline(xs, ys []float64) (*CubicSpline, error) {
	axis, err := newAxis(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("NewCubicSpline: %w", err)
	}
	s := &CubicSpline{Axis: axis}
	s.fit()
	return s, nil
}

// fit solves the tridiagonal second-derivative continuity system with natural
// boundary conditions via forward elimination and back substitution.
func (s *CubicSpline) fit() {
	x := s.xs
	n := len(x) - 1

	s.a = s.Ys()

	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = x[i+1] - x[i]
	}

	alpha := make([]float64, n)
	for i := 1; i < n; i++ {
		alpha[i] = (3.0/h[i])*(s.a[i+1]-s.a[i]) - (3.0/h[i-1])*(s.a[i]-s.a[i-1])
	}

	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]float64, n+1)
	l[0] = 1.0
	mu[0] = 0.0
	z[0] = 0.0
	for i := 1; i < n; i++ {
		l[i] = 2.0*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n] = 1.0
	z[n] = 0.0

	s.c = make([]float64, n+1)
	s.b = make([]float64, n)
	s.d = make([]float64, n)
	s.c[n] = 0.0
	for j := n - 1; j >= 0; j-- {
		s.c[j] = z[j] - mu[j]*s.c[j+1]
		s.b[j] = (s.a[j+1]-s.a[j])/h[j] - h[j]*(s.c[j+1]+2.0*s.c[j])/3.0
		s.d[j] = (s.c[j+1] - s.c[j]) / (3.0 * h[j])
	}
}

// Evaluate returns the spline value at x. An exact match at the upper bound
// returns the stored right-endpoint value directly; otherwise the first
// segment with x < xs[j] is evaluated at dx = x - xs[j-1].
func (s *CubicSpline) Evaluate(x float64) (float64, error) {
	if err := s.checkRange(x); err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}
	if x == s.XMax() {
		return s.ys[len(s.ys)-1], nil
	}

	i := 0
	for j := 1; j < len(s.xs); j++ {
		if x < s.xs[j] {
			i = j - 1
			break
		}
	}
	dx := x - s.xs[i]
	return s.a[i] + s.b[i]*dx + s.c[i]*dx*dx + s.d[i]*dx*dx*dx, nil
}

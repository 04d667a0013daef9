// Package prob implements the probability distributions used by the
// surrounding instrument models.
package prob

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrNonPositiveSigma is returned when a normal distribution is constructed
// with a non-positive standard deviation.
var ErrNonPositiveSigma = errors.New("the parameter sigma for the normal distribution has to be positive")

// Distribution is a one-dimensional probability distribution.
type Distribution interface {
	PDF(x float64) float64
	CDF(x float64) float64
	Rand() float64
}

// Normal is a normal distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// StdNormal returns the standard normal distribution N(0, 1).
func StdNormal() *Normal {
	return &Normal{Mu: 0, Sigma: 1}
}

// NewNormal builds a normal distribution, rejecting sigma <= 0 with
// ErrNonPositiveSigma.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("NewNormal: %w (got %g)", ErrNonPositiveSigma, sigma)
	}
	return &Normal{Mu: mu, Sigma: sigma}, nil
}

// PDF returns the probability density at x.
func (n *Normal) PDF(x float64) float64 {
	factor := 1.0 / (n.Sigma * math.Sqrt(2.0*math.Pi))
	z := (x - n.Mu) / n.Sigma
	return factor * math.Exp(-0.5*z*z)
}

// CDF returns the cumulative probability at x.
//
// Uses the rational approximation from Graeme West, "Better approximations
// to cumulative normal functions" (2004), accurate to double precision over
// the full tail.
func (n *Normal) CDF(x float64) float64 {
	const split = 7.07106781186547

	const (
		n0 = 220.206867912376
		n1 = 221.213596169931
		n2 = 112.079291497871
		n3 = 33.912866078383
		n4 = 6.37396220353165
		n5 = 0.700383064443688
		n6 = 3.52624965998911e-02
	)
	const (
		m0 = 440.413735824752
		m1 = 793.826512519948
		m2 = 637.333633378831
		m3 = 296.564248779674
		m4 = 86.7807322029461
		m5 = 16.064177579207
		m6 = 1.75566716318264
		m7 = 8.83883476483184e-02
	)

	z := math.Abs((x - n.Mu) / n.Sigma)
	c := 0.0
	if z <= 37.0 {
		e := math.Exp(-z * z / 2.0)
		if z < split {
			num := (((((n6*z+n5)*z+n4)*z+n3)*z+n2)*z+n1)*z + n0
			den := ((((((m7*z+m6)*z+m5)*z+m4)*z+m3)*z+m2)*z+m1)*z + m0
			c = e * num / den
		} else {
			f := z + 1.0/(z+2.0/(z+3.0/(z+4.0/(z+13.0/20.0))))
			c = e / (math.Sqrt(2.0*math.Pi) * f)
		}
	}
	if x <= n.Mu {
		return c
	}
	return 1.0 - c
}

// Rand samples a random number from the distribution.
func (n *Normal) Rand() float64 {
	return n.Mu + n.Sigma*rand.NormFloat64()
}

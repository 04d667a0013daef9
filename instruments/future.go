package instruments

import (
	"fmt"

	"github.com/meenmo/finmath/temporal"
)

// Future is a futures contract, either perpetual or carrying an expiry.
type Future struct {
	Perpetual bool
	Expiry    temporal.Timestamp
}

// Kind implements Instrument.
func (Future) Kind() Kind { return KindFuture }

// NewPerpetualFuture builds a future with no expiry.
func NewPerpetualFuture() Future {
	return Future{Perpetual: true}
}

// NewFuture builds a dated future.
func NewFuture(expiry temporal.Timestamp) Future {
	return Future{Expiry: expiry}
}

// VolatilityFuture is a future on a volatility index.
type VolatilityFuture struct {
	Expiry temporal.Timestamp
}

// Kind implements Instrument.
func (VolatilityFuture) Kind() Kind { return KindVolatilityFuture }

// StructuredFuture is a weighted basket of futures.
type StructuredFuture struct {
	Futures []Future
	Weights []float64
}

// Kind implements Instrument.
func (StructuredFuture) Kind() Kind { return KindStructuredFuture }

// NewStructuredFuture builds a weighted futures basket, rejecting mismatched
// weight counts with ErrWeightMismatch.
func NewStructuredFuture(futures []Future, weights []float64) (StructuredFuture, error) {
	if len(futures) != len(weights) {
		return StructuredFuture{}, fmt.Errorf("NewStructuredFuture: %w (%d futures, %d weights)",
			ErrWeightMismatch, len(futures), len(weights))
	}
	return StructuredFuture{Futures: futures, Weights: weights}, nil
}

// FutureSpread is a long/short pair of futures held with weights +1 and -1.
type FutureSpread struct {
	Basket StructuredFuture
}

// Kind implements Instrument.
func (FutureSpread) Kind() Kind { return KindFutureSpread }

// NewFutureSpread builds a spread long the first future and short the second.
func NewFutureSpread(long, short Future) FutureSpread {
	return FutureSpread{
		Basket: StructuredFuture{
			Futures: []Future{long, short},
			Weights: []float64{1.0, -1.0},
		},
	}
}

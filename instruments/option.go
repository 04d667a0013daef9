package instruments

import (
	"errors"
	"fmt"

	"github.com/meenmo/finmath/temporal"
)

// ErrWeightMismatch is returned when a structured basket is built with a
// weight count that differs from its component count.
var ErrWeightMismatch = errors.New("weights and components must have the same length")

// Right distinguishes calls from puts. The numeric values are the payoff
// signs used by the surrounding models.
type Right int

const (
	Call Right = 1
	Put  Right = -1
)

func (r Right) String() string {
	switch r {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// Exercise is the option exercise style.
type Exercise int

const (
	European Exercise = iota
	American
	Bermudan
)

func (e Exercise) String() string {
	switch e {
	case European:
		return "european"
	case American:
		return "american"
	case Bermudan:
		return "bermudan"
	default:
		return "unknown"
	}
}

// Option is a vanilla option with a strike, a right, an exercise style and an
// expiry instant.
type Option struct {
	Strike   float64
	Right    Right
	Exercise Exercise
	Expiry   temporal.Timestamp
}

// Kind implements Instrument.
func (Option) Kind() Kind { return KindOption }

// NewEuropeanVanilla builds a European vanilla option.
func NewEuropeanVanilla(expiry temporal.Timestamp, right Right, strike float64) Option {
	return Option{Strike: strike, Right: right, Exercise: European, Expiry: expiry}
}

// NewAmericanVanilla builds an American vanilla option.
func NewAmericanVanilla(expiry temporal.Timestamp, right Right, strike float64) Option {
	return Option{Strike: strike, Right: right, Exercise: American, Expiry: expiry}
}

// StructuredOption is a weighted basket of options.
type StructuredOption struct {
	Options []Option
	Weights []float64
}

// Kind implements Instrument.
func (StructuredOption) Kind() Kind { return KindStructuredOption }

// NewStructuredOption builds a weighted option basket, rejecting mismatched
// weight counts with ErrWeightMismatch.
func NewStructuredOption(options []Option, weights []float64) (StructuredOption, error) {
	if len(options) != len(weights) {
		return StructuredOption{}, fmt.Errorf("NewStructuredOption: %w (%d options, %d weights)",
			ErrWeightMismatch, len(options), len(weights))
	}
	return StructuredOption{Options: options, Weights: weights}, nil
}

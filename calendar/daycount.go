// Package calendar implements day-count conventions, standard tenors, year
// fractions and date-sequence generation over temporal timestamps.
package calendar

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/finmath/temporal"
)

var (
	// ErrUndefinedConvention is returned for a day count convention outside
	// the supported enumeration.
	ErrUndefinedConvention = errors.New("undefined day count convention")

	// ErrNonPositiveYearFraction is returned when a computed year fraction is
	// strictly negative, i.e. the end date precedes the start date.
	ErrNonPositiveYearFraction = errors.New("a year fraction has to be positive")
)

// Convention is a day count convention fixing the assumed number of days per
// year.
type Convention int

const (
	ACT360 Convention = iota
	ACT365
	ACT364
)

// Name returns the market name of the convention.
func (c Convention) Name() (string, error) {
	switch c {
	case ACT360:
		return "ACT/360", nil
	case ACT365:
		return "ACT/365", nil
	case ACT364:
		return "ACT/364", nil
	default:
		return "", fmt.Errorf("Name: %w (%d)", ErrUndefinedConvention, int(c))
	}
}

// DaysPerYear returns the number of days per year the convention assumes.
func (c Convention) DaysPerYear() (int, error) {
	switch c {
	case ACT360:
		return 360, nil
	case ACT365:
		return 365, nil
	case ACT364:
		return 364, nil
	default:
		return 0, fmt.Errorf("DaysPerYear: %w (%d)", ErrUndefinedConvention, int(c))
	}
}

// DaysPerMonth returns the convention's month length, one twelfth of its year
// rounded to the nearest day.
func (c Convention) DaysPerMonth() (int, error) {
	perYear, err := c.DaysPerYear()
	if err != nil {
		return 0, fmt.Errorf("DaysPerMonth: %w (%d)", ErrUndefinedConvention, int(c))
	}
	return int(math.Round(float64(perYear) / 12.0)), nil
}

// ParseConvention maps a market name like "ACT/360" to its Convention.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "ACT/360":
		return ACT360, nil
	case "ACT/365":
		return ACT365, nil
	case "ACT/364":
		return ACT364, nil
	default:
		return 0, fmt.Errorf("ParseConvention(%q): %w", s, ErrUndefinedConvention)
	}
}

const (
	dayInSeconds     = 24 * 60 * 60
	dayInNanoseconds = dayInSeconds * int64(temporal.Nanoseconds)
)

// YearFraction computes the elapsed time between two instants as a fraction
// of the convention-defined year. The interval is measured at nanosecond
// precision. A zero fraction is accepted; a strictly negative one is rejected
// with ErrNonPositiveYearFraction.
func YearFraction(start, end temporal.Timestamp, conv Convention) (float64, error) {
	perYear, err := conv.DaysPerYear()
	if err != nil {
		return 0, fmt.Errorf("YearFraction: %w", err)
	}
	totalNs := temporal.DeltaBetween(start, end, temporal.Nanoseconds).TotalNanoseconds()
	t := float64(totalNs) / float64(int64(perYear)*dayInNanoseconds)
	if t < 0 {
		return 0, fmt.Errorf("YearFraction: %w (got %g)", ErrNonPositiveYearFraction, t)
	}
	return t, nil
}

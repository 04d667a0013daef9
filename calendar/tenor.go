package calendar

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/finmath/temporal"
)

// ErrUndefinedTenor is returned for a tenor outside the supported
// enumeration.
var ErrUndefinedTenor = errors.New("undefined tenor")

// Tenor is a named standard time-to-maturity. ON/TN/SN and the week tenors
// map to fixed day counts; month and year multiples scale with the active day
// count convention.
type Tenor int

const (
	ON Tenor = iota
	TN
	SN
	W1
	W2
	M1
	M3
	M6
	Y1
	Y5
	Y10
	Y20
	Y30
)

// Tenors lists every supported tenor in maturity order.
var Tenors = []Tenor{ON, TN, SN, W1, W2, M1, M3, M6, Y1, Y5, Y10, Y20, Y30}

// Name returns the market name of the tenor.
func (t Tenor) Name() (string, error) {
	switch t {
	case ON:
		return "ON", nil
	case TN:
		return "TN", nil
	case SN:
		return "SN", nil
	case W1:
		return "1W", nil
	case W2:
		return "2W", nil
	case M1:
		return "1M", nil
	case M3:
		return "3M", nil
	case M6:
		return "6M", nil
	case Y1:
		return "1Y", nil
	case Y5:
		return "5Y", nil
	case Y10:
		return "10Y", nil
	case Y20:
		return "20Y", nil
	case Y30:
		return "30Y", nil
	default:
		return "", fmt.Errorf("Name: %w (%d)", ErrUndefinedTenor, int(t))
	}
}

// ParseTenor maps a market name like "3M" or "ON" to its Tenor.
func ParseTenor(s string) (Tenor, error) {
	for _, t := range Tenors {
		name, _ := t.Name()
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("ParseTenor(%q): %w", s, ErrUndefinedTenor)
}

// Days returns the tenor's length in days under the given convention.
// Overnight, tomorrow-next, spot-next and week tenors are fixed; month and
// year tenors scale with the convention's month and year lengths.
func (t Tenor) Days(conv Convention) (int, error) {
	perYear, err := conv.DaysPerYear()
	if err != nil {
		return 0, fmt.Errorf("Days: %w", err)
	}
	perMonth, err := conv.DaysPerMonth()
	if err != nil {
		return 0, fmt.Errorf("Days: %w", err)
	}
	switch t {
	case ON:
		return 1, nil
	case TN:
		return 2, nil
	case SN:
		return 3, nil
	case W1:
		return 7, nil
	case W2:
		return 14, nil
	case M1:
		return perMonth, nil
	case M3:
		return 3 * perMonth, nil
	case M6:
		return 6 * perMonth, nil
	case Y1:
		return perYear, nil
	case Y5:
		return 5 * perYear, nil
	case Y10:
		return 10 * perYear, nil
	case Y20:
		return 20 * perYear, nil
	case Y30:
		return 30 * perYear, nil
	default:
		return 0, fmt.Errorf("Days: %w (%d)", ErrUndefinedTenor, int(t))
	}
}

// AsDelta returns the tenor as a days-only Delta under the given convention.
func (t Tenor) AsDelta(conv Convention) (temporal.Delta, error) {
	days, err := t.Days(conv)
	if err != nil {
		return temporal.Delta{}, fmt.Errorf("AsDelta: %w", err)
	}
	return temporal.DeltaFromDays(int64(days)), nil
}

// TenorYearFraction returns the tenor's length as a fraction of the
// convention-defined year. The division is real-valued, so sub-year tenors
// yield proper fractions.
func TenorYearFraction(t Tenor, conv Convention) (float64, error) {
	days, err := t.Days(conv)
	if err != nil {
		return 0, fmt.Errorf("TenorYearFraction: %w", err)
	}
	perYear, err := conv.DaysPerYear()
	if err != nil {
		return 0, fmt.Errorf("TenorYearFraction: %w", err)
	}
	return float64(days) / float64(perYear), nil
}

// PeriodsBetween returns the number of whole frequency-tenor periods between
// two instants, rounded to the nearest integer. The interval is measured at
// second precision.
func PeriodsBetween(start, end temporal.Timestamp, freq Tenor, conv Convention) (int, error) {
	freqDelta, err := freq.AsDelta(conv)
	if err != nil {
		return 0, fmt.Errorf("PeriodsBetween: %w", err)
	}
	total := temporal.DeltaBetween(start, end, temporal.Seconds).TotalSeconds()
	return int(math.Round(float64(total) / float64(freqDelta.TotalSeconds()))), nil
}

// EndFromTenor returns the instant reached by applying the tenor's delta to
// start. The start value is left untouched.
func EndFromTenor(start temporal.Timestamp, t Tenor, conv Convention) (temporal.Timestamp, error) {
	delta, err := t.AsDelta(conv)
	if err != nil {
		return temporal.Timestamp{}, fmt.Errorf("EndFromTenor: %w", err)
	}
	return start.Add(delta), nil
}

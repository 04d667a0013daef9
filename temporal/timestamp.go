// Package temporal implements epoch timestamps at configurable precision and
// non-normalized time deltas, the value types underlying the calendar and
// scheduling layers.
package temporal

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNegativeTimestamp is returned when a timestamp would be constructed with
// a negative tick count.
var ErrNegativeTimestamp = errors.New("a timestamp value cannot be negative")

// Precision tags the unit a Timestamp's ticks are expressed in. The numeric
// value of each constant is its scale factor relative to one second, so
// precision conversion is a plain ratio of the two enum values.
type Precision int64

const (
	Seconds      Precision = 1
	Milliseconds Precision = 1_000
	Microseconds Precision = 1_000_000
	Nanoseconds  Precision = 1_000_000_000
)

func (p Precision) String() string {
	switch p {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case Nanoseconds:
		return "ns"
	default:
		return fmt.Sprintf("Precision(%d)", int64(p))
	}
}

// ParsePrecision maps a unit name to its Precision. Accepted names are the
// String() forms "s", "ms", "us", "ns".
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "s":
		return Seconds, nil
	case "ms":
		return Milliseconds, nil
	case "us":
		return Microseconds, nil
	case "ns":
		return Nanoseconds, nil
	default:
		return 0, fmt.Errorf("unknown precision %q", s)
	}
}

// Timestamp is an integer instant since the Unix epoch, tagged with the unit
// its ticks are counted in.
//
// Timestamp is a plain value: Convert and Add return new values and never
// modify the receiver, so instances may be shared freely across goroutines.
type Timestamp struct {
	Ticks     int64
	Precision Precision
}

// NewTimestamp builds a Timestamp and rejects negative tick counts with
// ErrNegativeTimestamp.
func NewTimestamp(ticks int64, p Precision) (Timestamp, error) {
	if ticks < 0 {
		return Timestamp{}, fmt.Errorf("NewTimestamp(%d, %s): %w", ticks, p, ErrNegativeTimestamp)
	}
	return Timestamp{Ticks: ticks, Precision: p}, nil
}

// FromTime converts a time.Time to a Timestamp at the requested precision.
// Instants before the Unix epoch are rejected with ErrNegativeTimestamp.
func FromTime(t time.Time, p Precision) (Timestamp, error) {
	ns := Timestamp{Ticks: t.UnixNano(), Precision: Nanoseconds}
	if ns.Ticks < 0 {
		return Timestamp{}, fmt.Errorf("FromTime(%s): %w", t.Format("2006-01-02"), ErrNegativeTimestamp)
	}
	return ns.Convert(p), nil
}

// Convert returns the same instant rescaled to precision p. Ticks are
// multiplied by the ratio of the two scale factors and rounded to the nearest
// integer, so a round trip through a coarser precision can lose up to one
// coarse unit.
func (t Timestamp) Convert(p Precision) Timestamp {
	if p == t.Precision {
		return t
	}
	factor := float64(p) / float64(t.Precision)
	return Timestamp{
		Ticks:     int64(math.Round(factor * float64(t.Ticks))),
		Precision: p,
	}
}

// Add returns the timestamp shifted by the delta aggregated into the
// receiver's precision.
func (t Timestamp) Add(d Delta) Timestamp {
	return Timestamp{
		Ticks:     t.Ticks + d.TotalIn(t.Precision),
		Precision: t.Precision,
	}
}

// Before reports whether t is strictly earlier than u, comparing at
// nanosecond precision.
func (t Timestamp) Before(u Timestamp) bool {
	return t.Convert(Nanoseconds).Ticks < u.Convert(Nanoseconds).Ticks
}

// Time resolves the timestamp to a time.Time at nanosecond resolution.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, t.Convert(Nanoseconds).Ticks)
}

// CivilDate is a timestamp resolved to calendar fields under the platform's
// local-time rule.
type CivilDate struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

// Civil resolves the timestamp to local civil time. The receiver is
// unchanged: the second-precision view is computed on a copy.
func (t Timestamp) Civil() CivilDate {
	sec := t.Convert(Seconds).Ticks
	local := time.Unix(sec, 0)
	return CivilDate{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Weekday: local.Weekday(),
	}
}

// IsWeekend reports whether the civil date falls on a Saturday or Sunday.
func (t Timestamp) IsWeekend() bool {
	wd := t.Civil().Weekday
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the civil (day, month, year) matches any entry in
// holidays. The comparison ignores precision and intraday position on both
// sides.
func (t Timestamp) IsHoliday(holidays []Timestamp) bool {
	c := t.Civil()
	for _, h := range holidays {
		hc := h.Civil()
		if c.Day == hc.Day && c.Month == hc.Month && c.Year == hc.Year {
			return true
		}
	}
	return false
}

// DeltaBetween returns end minus start expressed in unit. Both endpoints are
// converted on copies; the result populates only the field matching unit and
// is intentionally not normalized across fields.
func DeltaBetween(start, end Timestamp, unit Precision) Delta {
	diff := end.Convert(unit).Ticks - start.Convert(unit).Ticks
	switch unit {
	case Seconds:
		return Delta{Seconds: diff}
	case Milliseconds:
		return Delta{Milliseconds: diff}
	case Microseconds:
		return Delta{Microseconds: diff}
	default:
		return Delta{Nanoseconds: diff}
	}
}

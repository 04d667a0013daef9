package temporal

import "math"

// Delta is a signed time difference decomposed into independent components.
//
// Fields are deliberately not normalized: Hours may exceed 23, components may
// carry opposite signs, and nothing forces a field into a canonical range.
// Only the Total* aggregations give the delta a single-unit meaning.
type Delta struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Nanoseconds  int64
}

// NewDelta builds a Delta from its seven components. Any sign and magnitude
// is accepted.
func NewDelta(days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds int64) Delta {
	return Delta{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: milliseconds,
		Microseconds: microseconds,
		Nanoseconds:  nanoseconds,
	}
}

// DeltaFromDays returns a Delta with only the day component populated.
func DeltaFromDays(days int64) Delta {
	return Delta{Days: days}
}

func (d *Delta) SetDays(n int64)         { d.Days = n }
func (d *Delta) SetHours(n int64)        { d.Hours = n }
func (d *Delta) SetMinutes(n int64)      { d.Minutes = n }
func (d *Delta) SetSeconds(n int64)      { d.Seconds = n }
func (d *Delta) SetMilliseconds(n int64) { d.Milliseconds = n }
func (d *Delta) SetMicroseconds(n int64) { d.Microseconds = n }
func (d *Delta) SetNanoseconds(n int64)  { d.Nanoseconds = n }

// rescale converts v from one precision scale to another, rounding to the
// nearest integer. Each sub-unit contribution is rounded independently before
// summation; summing unrounded ratios gives different totals at unit
// boundaries.
func rescale(v int64, from, to Precision) int64 {
	return int64(math.Round(float64(v) * float64(to) / float64(from)))
}

// coarseSeconds is the second count carried by the day/hour/minute/second
// components alone.
func (d Delta) coarseSeconds() int64 {
	return d.Days*24*60*60 + d.Hours*60*60 + d.Minutes*60 + d.Seconds
}

// TotalSeconds aggregates every component into seconds, rounding each
// finer-grained component to the nearest second.
func (d Delta) TotalSeconds() int64 {
	return d.coarseSeconds() +
		rescale(d.Milliseconds, Milliseconds, Seconds) +
		rescale(d.Microseconds, Microseconds, Seconds) +
		rescale(d.Nanoseconds, Nanoseconds, Seconds)
}

// TotalMilliseconds aggregates every component into milliseconds.
func (d Delta) TotalMilliseconds() int64 {
	return d.coarseSeconds()*1000 + d.Milliseconds +
		rescale(d.Microseconds, Microseconds, Milliseconds) +
		rescale(d.Nanoseconds, Nanoseconds, Milliseconds)
}

// TotalMicroseconds aggregates every component into microseconds.
func (d Delta) TotalMicroseconds() int64 {
	return (d.coarseSeconds()*1000+d.Milliseconds)*1000 + d.Microseconds +
		rescale(d.Nanoseconds, Nanoseconds, Microseconds)
}

// TotalNanoseconds aggregates every component into nanoseconds. The chain is
// exact: no rounding step is involved.
func (d Delta) TotalNanoseconds() int64 {
	return ((d.coarseSeconds()*1000+d.Milliseconds)*1000+d.Microseconds)*1000 + d.Nanoseconds
}

// TotalIn returns the delta aggregated into the unit matching p.
func (d Delta) TotalIn(p Precision) int64 {
	switch p {
	case Seconds:
		return d.TotalSeconds()
	case Milliseconds:
		return d.TotalMilliseconds()
	case Microseconds:
		return d.TotalMicroseconds()
	default:
		return d.TotalNanoseconds()
	}
}

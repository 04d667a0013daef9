package calendar

import (
	"fmt"
	"sort"

	"github.com/meenmo/finmath/temporal"
)

// OrderSequence sorts timestamps into ascending order and collapses duplicate
// instants. Every element of the result is expressed at nanosecond precision;
// two inputs that round to the same nanosecond tick are treated as the same
// instant.
func OrderSequence(dates []temporal.Timestamp) []temporal.Timestamp {
	seen := make(map[int64]struct{}, len(dates))
	ticks := make([]int64, 0, len(dates))
	for _, d := range dates {
		ns := d.Convert(temporal.Nanoseconds).Ticks
		if _, ok := seen[ns]; ok {
			continue
		}
		seen[ns] = struct{}{}
		ticks = append(ticks, ns)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })

	out := make([]temporal.Timestamp, len(ticks))
	for i, ns := range ticks {
		out[i] = temporal.Timestamp{Ticks: ns, Precision: temporal.Nanoseconds}
	}
	return out
}

// GenerateSequence produces a date sequence from start to end at the given
// frequency tenor.
//
// With n = PeriodsBetween(start, end, freq, conv), the interior of the
// sequence holds n-1 points obtained by cumulatively applying the frequency
// delta to start. includeStart prepends start and includeEnd appends end
// verbatim. When n <= 1 the interior is empty regardless of the include
// flags, so the flags alone decide the output.
func GenerateSequence(
	start temporal.Timestamp,
	freq Tenor,
	conv Convention,
	includeStart, includeEnd bool,
	end temporal.Timestamp,
) ([]temporal.Timestamp, error) {
	delta, err := freq.AsDelta(conv)
	if err != nil {
		return nil, fmt.Errorf("GenerateSequence: %w", err)
	}
	n, err := PeriodsBetween(start, end, freq, conv)
	if err != nil {
		return nil, fmt.Errorf("GenerateSequence: %w", err)
	}

	out := make([]temporal.Timestamp, 0, n+1)
	next := start
	for i := 1; i < n; i++ {
		next = next.Add(delta)
		out = append(out, next)
	}
	if includeStart {
		out = append([]temporal.Timestamp{start}, out...)
	}
	if includeEnd {
		out = append(out, end)
	}
	return out, nil
}

package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finmath/temporal"
)

func localDate(year int, month time.Month, day int) temporal.Timestamp {
	ts, err := temporal.FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.Local), temporal.Seconds)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestNewTimestampRejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := temporal.NewTimestamp(-1, temporal.Seconds)
	require.ErrorIs(t, err, temporal.ErrNegativeTimestamp)

	_, err = temporal.FromTime(time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC), temporal.Seconds)
	require.ErrorIs(t, err, temporal.ErrNegativeTimestamp)

	ts, err := temporal.NewTimestamp(0, temporal.Seconds)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts.Ticks)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ticks int64
		from  temporal.Precision
		to    temporal.Precision
		want  int64
	}{
		{"seconds to milliseconds", 2, temporal.Seconds, temporal.Milliseconds, 2000},
		{"milliseconds to seconds rounds", 1500, temporal.Milliseconds, temporal.Seconds, 2},
		{"milliseconds to seconds rounds down", 1499, temporal.Milliseconds, temporal.Seconds, 1},
		{"seconds to nanoseconds", 3, temporal.Seconds, temporal.Nanoseconds, 3_000_000_000},
		{"microseconds to milliseconds", 1250, temporal.Microseconds, temporal.Milliseconds, 1},
		{"same precision is identity", 42, temporal.Seconds, temporal.Seconds, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := temporal.NewTimestamp(tt.ticks, tt.from)
			require.NoError(t, err)
			got := ts.Convert(tt.to)
			assert.Equal(t, tt.want, got.Ticks)
			assert.Equal(t, tt.to, got.Precision)
		})
	}
}

func TestConvertIsPure(t *testing.T) {
	t.Parallel()

	ts, err := temporal.NewTimestamp(1500, temporal.Milliseconds)
	require.NoError(t, err)

	_ = ts.Convert(temporal.Seconds)
	assert.Equal(t, int64(1500), ts.Ticks)
	assert.Equal(t, temporal.Milliseconds, ts.Precision)
}

func TestConvertRoundTripLoss(t *testing.T) {
	t.Parallel()

	// Down-converting discards sub-unit detail; the round trip lands on the
	// nearest coarse boundary.
	ts, err := temporal.NewTimestamp(1500, temporal.Milliseconds)
	require.NoError(t, err)

	back := ts.Convert(temporal.Seconds).Convert(temporal.Milliseconds)
	assert.Equal(t, int64(2000), back.Ticks)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	ts, err := temporal.NewTimestamp(100, temporal.Seconds)
	require.NoError(t, err)

	got := ts.Add(temporal.Delta{Minutes: 1})
	assert.Equal(t, int64(160), got.Ticks)
	assert.Equal(t, int64(100), ts.Ticks)

	// The delta is aggregated into the receiver's unit, so sub-unit parts
	// round at that granularity.
	got = ts.Add(temporal.Delta{Milliseconds: 600})
	assert.Equal(t, int64(101), got.Ticks)
}

func TestBeforeComparesAcrossPrecisions(t *testing.T) {
	t.Parallel()

	a, err := temporal.NewTimestamp(1, temporal.Seconds)
	require.NoError(t, err)
	b, err := temporal.NewTimestamp(1500, temporal.Milliseconds)
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestCivil(t *testing.T) {
	t.Parallel()

	d := localDate(2024, time.January, 25).Civil()
	assert.Equal(t, 2024, d.Year)
	assert.Equal(t, time.January, d.Month)
	assert.Equal(t, 25, d.Day)
	assert.Equal(t, time.Thursday, d.Weekday)
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	assert.True(t, localDate(2024, time.January, 27).IsWeekend())  // Saturday
	assert.True(t, localDate(2024, time.January, 28).IsWeekend())  // Sunday
	assert.False(t, localDate(2024, time.January, 25).IsWeekend()) // Thursday
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	holidays := []temporal.Timestamp{
		localDate(2024, time.December, 25),
		localDate(2024, time.January, 1),
	}

	assert.True(t, localDate(2024, time.December, 25).IsHoliday(holidays))
	assert.False(t, localDate(2024, time.December, 24).IsHoliday(holidays))
	// Same day in a different year is not a holiday.
	assert.False(t, localDate(2025, time.December, 25).IsHoliday(holidays))

	// Intraday position and precision are ignored on both sides.
	noon, err := temporal.FromTime(time.Date(2024, 12, 25, 12, 30, 0, 0, time.Local), temporal.Milliseconds)
	require.NoError(t, err)
	assert.True(t, noon.IsHoliday(holidays))
}

func TestDeltaBetween(t *testing.T) {
	t.Parallel()

	start, err := temporal.NewTimestamp(100, temporal.Seconds)
	require.NoError(t, err)
	end, err := temporal.NewTimestamp(250, temporal.Seconds)
	require.NoError(t, err)

	d := temporal.DeltaBetween(start, end, temporal.Seconds)
	assert.Equal(t, temporal.Delta{Seconds: 150}, d)

	d = temporal.DeltaBetween(start, end, temporal.Milliseconds)
	assert.Equal(t, temporal.Delta{Milliseconds: 150_000}, d)

	// Reversed endpoints give a negative component.
	d = temporal.DeltaBetween(end, start, temporal.Seconds)
	assert.Equal(t, temporal.Delta{Seconds: -150}, d)
}

func TestPrecisionNames(t *testing.T) {
	t.Parallel()

	for _, p := range []temporal.Precision{
		temporal.Seconds, temporal.Milliseconds, temporal.Microseconds, temporal.Nanoseconds,
	} {
		got, err := temporal.ParsePrecision(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := temporal.ParsePrecision("fortnights")
	assert.Error(t, err)
}

package instruments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/instruments"
	"github.com/meenmo/finmath/temporal"
)

func secondsTS(t *testing.T, ticks int64) temporal.Timestamp {
	t.Helper()
	ts, err := temporal.NewTimestamp(ticks, temporal.Seconds)
	require.NoError(t, err)
	return ts
}

func TestKinds(t *testing.T) {
	t.Parallel()

	expiry := secondsTS(t, 0)

	tests := []struct {
		inst instruments.Instrument
		kind instruments.Kind
		name string
	}{
		{instruments.NewZeroCouponBond(expiry), instruments.KindZeroCouponBond, "zero_coupon_bond"},
		{instruments.NewEuropeanVanilla(expiry, instruments.Call, 100), instruments.KindOption, "option"},
		{instruments.NewPerpetualFuture(), instruments.KindFuture, "future"},
		{instruments.VolatilityFuture{Expiry: expiry}, instruments.KindVolatilityFuture, "volatility_future"},
		{instruments.NewFutureSpread(instruments.NewFuture(expiry), instruments.NewPerpetualFuture()), instruments.KindFutureSpread, "future_spread"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.inst.Kind())
		assert.Equal(t, tt.name, tt.inst.Kind().String())
	}
}

func TestOptionConstructors(t *testing.T) {
	t.Parallel()

	expiry := secondsTS(t, 1000)

	call := instruments.NewEuropeanVanilla(expiry, instruments.Call, 105)
	assert.Equal(t, instruments.European, call.Exercise)
	assert.Equal(t, instruments.Call, call.Right)
	assert.Equal(t, 105.0, call.Strike)

	put := instruments.NewAmericanVanilla(expiry, instruments.Put, 95)
	assert.Equal(t, instruments.American, put.Exercise)
	assert.Equal(t, instruments.Put, put.Right)

	// Payoff signs by convention.
	assert.Equal(t, 1, int(instruments.Call))
	assert.Equal(t, -1, int(instruments.Put))
}

func TestStructuredOptionWeights(t *testing.T) {
	t.Parallel()

	expiry := secondsTS(t, 1000)
	opts := []instruments.Option{
		instruments.NewEuropeanVanilla(expiry, instruments.Call, 100),
		instruments.NewEuropeanVanilla(expiry, instruments.Put, 100),
	}

	straddle, err := instruments.NewStructuredOption(opts, []float64{1, 1})
	require.NoError(t, err)
	assert.Len(t, straddle.Options, 2)

	_, err = instruments.NewStructuredOption(opts, []float64{1})
	assert.ErrorIs(t, err, instruments.ErrWeightMismatch)
}

func TestFutures(t *testing.T) {
	t.Parallel()

	perp := instruments.NewPerpetualFuture()
	assert.True(t, perp.Perpetual)

	dated := instruments.NewFuture(secondsTS(t, 500))
	assert.False(t, dated.Perpetual)
	assert.Equal(t, int64(500), dated.Expiry.Ticks)

	_, err := instruments.NewStructuredFuture([]instruments.Future{perp}, []float64{1, -1})
	assert.ErrorIs(t, err, instruments.ErrWeightMismatch)

	spread := instruments.NewFutureSpread(dated, perp)
	assert.Equal(t, []float64{1, -1}, spread.Basket.Weights)
}

func TestYearsToExpiry(t *testing.T) {
	t.Parallel()

	valuation := secondsTS(t, 0)
	expiry := secondsTS(t, 365*24*60*60)

	frac, err := instruments.YearsToExpiry(valuation, expiry, calendar.ACT365)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, frac, 1e-12)

	_, err = instruments.YearsToExpiry(expiry, valuation, calendar.ACT365)
	assert.ErrorIs(t, err, calendar.ErrNonPositiveYearFraction)
}

func TestExpiryFromTenor(t *testing.T) {
	t.Parallel()

	start := secondsTS(t, 0)
	expiry, err := instruments.ExpiryFromTenor(start, calendar.Y1, calendar.ACT360)
	require.NoError(t, err)
	assert.Equal(t, int64(360*24*60*60), expiry.Ticks)
}

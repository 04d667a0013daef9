// Package instruments holds the thin domain model consuming the temporal and
// calendar engines: bonds, options and futures carry an expiry timestamp and
// expose year-fraction and tenor helpers; no pricing lives here.
package instruments

import (
	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/temporal"
)

// Kind is the closed tag identifying a concrete instrument type. It replaces
// runtime type inspection: every concrete instrument reports its Kind
// explicitly.
type Kind int

const (
	KindZeroCouponBond Kind = iota
	KindOption
	KindStructuredOption
	KindFuture
	KindVolatilityFuture
	KindStructuredFuture
	KindFutureSpread
)

func (k Kind) String() string {
	switch k {
	case KindZeroCouponBond:
		return "zero_coupon_bond"
	case KindOption:
		return "option"
	case KindStructuredOption:
		return "structured_option"
	case KindFuture:
		return "future"
	case KindVolatilityFuture:
		return "volatility_future"
	case KindStructuredFuture:
		return "structured_future"
	case KindFutureSpread:
		return "future_spread"
	default:
		return "unknown"
	}
}

// Instrument is anything with a Kind tag.
type Instrument interface {
	Kind() Kind
}

// YearsToExpiry returns the year fraction between a valuation instant and an
// expiry under the given convention.
func YearsToExpiry(valuation, expiry temporal.Timestamp, conv calendar.Convention) (float64, error) {
	return calendar.YearFraction(valuation, expiry, conv)
}

// ExpiryFromTenor derives an expiry timestamp by applying a tenor to a start
// instant.
func ExpiryFromTenor(start temporal.Timestamp, t calendar.Tenor, conv calendar.Convention) (temporal.Timestamp, error) {
	return calendar.EndFromTenor(start, t, conv)
}

package instruments

import "github.com/meenmo/finmath/temporal"

// ZeroCouponBond is a bond paying its face value at expiry with no coupons.
type ZeroCouponBond struct {
	Expiry temporal.Timestamp
}

// Kind implements Instrument.
func (ZeroCouponBond) Kind() Kind { return KindZeroCouponBond }

// NewZeroCouponBond builds a zero coupon bond maturing at expiry.
func NewZeroCouponBond(expiry temporal.Timestamp) ZeroCouponBond {
	return ZeroCouponBond{Expiry: expiry}
}

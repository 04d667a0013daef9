package calendar

import "github.com/meenmo/finmath/temporal"

// IsBusinessDay checks weekends and the provided holiday list.
func IsBusinessDay(t temporal.Timestamp, holidays []temporal.Timestamp) bool {
	if t.IsWeekend() {
		return false
	}
	return !t.IsHoliday(holidays)
}

// NextBusinessDay advances one day at a time until it lands on a business
// day. A timestamp already on a business day is returned unchanged.
func NextBusinessDay(t temporal.Timestamp, holidays []temporal.Timestamp) temporal.Timestamp {
	oneDay := temporal.DeltaFromDays(1)
	for !IsBusinessDay(t, holidays) {
		t = t.Add(oneDay)
	}
	return t
}

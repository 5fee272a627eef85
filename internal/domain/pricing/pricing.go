// Package pricing holds the money rules shared by listing creation, venue
// browsing and booking quotes, so every call site prices a weekend the same way.
package pricing

import (
	"math"
	"time"
)

const (
	// ServiceChargeRate is applied on top of the base price of every booking.
	ServiceChargeRate = 0.10
	// WeekendMultiplier derives a weekend rate when the host did not set one.
	WeekendMultiplier = 1.2
)

// Round rounds to 2 decimals for currency display.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// WeekendRate is the canonical Friday/Saturday nightly rate.
func WeekendRate(price float64, weekendPrice *float64) float64 {
	if weekendPrice != nil && *weekendPrice > 0 {
		return Round(*weekendPrice)
	}
	return Round(price * WeekendMultiplier)
}

// IsWeekend reports whether the night of d is priced at the weekend rate.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// ServiceCharge returns the rounded service charge for base.
func ServiceCharge(base float64) float64 {
	return Round(base * ServiceChargeRate)
}

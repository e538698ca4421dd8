package domain

import (
	"math"
	"time"
)

// Nights computes the number of billable nights between check-in and
// check-out as ceil(diff / 24h). Unset or inverted ranges are rejected
// outright; an inverted pair must never yield a positive total.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0, ErrMissingDates
	}
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}
	diff := checkOut.Sub(checkIn)
	return int(math.Ceil(diff.Hours() / 24)), nil
}

// RoomTotal is the room checkout total: nights times the nightly price.
// Service checkouts charge the flat service price instead.
func RoomTotal(nights int, nightlyPrice float64) float64 {
	return float64(nights) * nightlyPrice
}

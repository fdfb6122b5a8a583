package domain

import "time"

// Passenger count bounds for a package. Values outside the range are
// rejected by the selection store, not clamped.
const (
	MinPassengers = 1
	MaxPassengers = 10
)

// PackageQuote is an immutable price snapshot for a complete selection.
// A new quote (with a new ID) is issued on every recomputation; an old
// quote ID is never reused.
type PackageQuote struct {
	ID             string
	FlightTotal    float64
	HotelTotal     float64
	TransferTotal  float64
	TotalPrice     float64
	PricePerPerson float64
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// Expired reports whether the quote can no longer be checked out at now.
func (q *PackageQuote) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

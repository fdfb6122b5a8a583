package quote

import (
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/session"
	"github.com/google/uuid"
)

const (
	// DefaultTTL is how long a quote stays valid after computation.
	DefaultTTL = 30 * time.Minute
	// DefaultStayNights is the fixed package stay length the hotel leg is
	// priced over. Not user-configurable.
	DefaultStayNights = 7
)

// Engine derives priced quotes from package selections. Derivation is
// pure; the only inputs are the selection, the policy and the clock.
type Engine struct {
	stayNights int
	ttl        time.Duration
}

func NewEngine(stayNights int, ttl time.Duration) *Engine {
	if stayNights <= 0 {
		stayNights = DefaultStayNights
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Engine{stayNights: stayNights, ttl: ttl}
}

// Compute returns a fresh quote for sel, or nil when any leg is missing.
// An incomplete selection is the expected "not ready" state, not an error.
// Every call issues a new quote ID, so recomputation invalidates any
// previously displayed quote.
func (e *Engine) Compute(sel session.Selection) *domain.PackageQuote {
	if !sel.Complete() {
		return nil
	}

	pax := float64(sel.Passengers)
	flightTotal := sel.Flight.Price * pax
	// One room charge per package: the hotel leg does not scale with
	// the passenger count.
	hotelTotal := sel.Hotel.PricePerNight * float64(e.stayNights)
	transferTotal := sel.Transfer.Price * pax
	total := flightTotal + hotelTotal + transferTotal

	now := time.Now()
	return &domain.PackageQuote{
		ID:             uuid.NewString(),
		FlightTotal:    flightTotal,
		HotelTotal:     hotelTotal,
		TransferTotal:  transferTotal,
		TotalPrice:     total,
		PricePerPerson: total / pax,
		CreatedAt:      now,
		ExpiresAt:      now.Add(e.ttl),
	}
}

package session

import "github.com/alpinetrips/skipack/internal/domain"

// DefaultPassengers is the passenger count a fresh store starts with.
const DefaultPassengers = 2

// Selection is a read-only snapshot of the in-progress package.
type Selection struct {
	Flight     *domain.Flight
	Hotel      *domain.Hotel
	Transfer   *domain.Transfer
	Passengers int
}

// Complete reports whether all three legs are chosen.
func (s Selection) Complete() bool {
	return s.Flight != nil && s.Hotel != nil && s.Transfer != nil
}

// Store is the single mutable source of truth for one session's package
// selection. It holds state only; quote recomputation is triggered by the
// workflow controller, not by the store.
type Store struct {
	flight     *domain.Flight
	hotel      *domain.Hotel
	transfer   *domain.Transfer
	passengers int
	quote      *domain.PackageQuote
}

func NewStore() *Store {
	return &Store{passengers: DefaultPassengers}
}

// SetFlight replaces the current flight unconditionally; it does not
// validate against the hotel or transfer legs.
func (s *Store) SetFlight(f *domain.Flight) { s.flight = f }

func (s *Store) SetHotel(h *domain.Hotel) { s.hotel = h }

func (s *Store) SetTransfer(t *domain.Transfer) { s.transfer = t }

// SetPassengerCount accepts n only within the domain bounds. Out-of-range
// values are rejected, keeping the prior valid count.
func (s *Store) SetPassengerCount(n int) bool {
	if n < domain.MinPassengers || n > domain.MaxPassengers {
		return false
	}
	s.passengers = n
	return true
}

// Clear resets the legs and the derived quote. The passenger count is a
// trip-level preference and survives a clear.
func (s *Store) Clear() {
	s.flight = nil
	s.hotel = nil
	s.transfer = nil
	s.quote = nil
}

func (s *Store) Snapshot() Selection {
	return Selection{
		Flight:     s.flight,
		Hotel:      s.hotel,
		Transfer:   s.transfer,
		Passengers: s.passengers,
	}
}

func (s *Store) PassengerCount() int { return s.passengers }

func (s *Store) Quote() *domain.PackageQuote { return s.quote }

// SetQuote replaces the stored quote snapshot; nil drops it.
func (s *Store) SetQuote(q *domain.PackageQuote) { s.quote = q }

package catalog

import (
	"context"

	"github.com/alpinetrips/skipack/internal/domain"
)

// Provider exposes the static travel catalog. All lookups are read-only
// and return an empty slice, not an error, when nothing matches.
type Provider interface {
	ListResorts(ctx context.Context) ([]domain.Resort, error)
	GetResort(ctx context.Context, id string) (*domain.Resort, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
	ListHotelsForResort(ctx context.Context, resortID string) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id string) (*domain.Hotel, error)
	ListTransfersFrom(ctx context.Context, airportCode string) ([]domain.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*domain.Transfer, error)
}

type StaticProvider struct {
	resorts   []domain.Resort
	flights   []domain.Flight
	hotels    map[string][]domain.Hotel
	transfers []domain.Transfer
}

// NewStaticProvider returns a provider over the built-in catalog.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		resorts:   resorts,
		flights:   flights,
		hotels:    hotelsByResort,
		transfers: transfers,
	}
}

func (p *StaticProvider) ListResorts(ctx context.Context) ([]domain.Resort, error) {
	out := make([]domain.Resort, len(p.resorts))
	copy(out, p.resorts)
	return out, nil
}

func (p *StaticProvider) GetResort(ctx context.Context, id string) (*domain.Resort, error) {
	for _, r := range p.resorts {
		if r.ID == id {
			resort := r
			return &resort, nil
		}
	}
	return nil, domain.ErrResortNotFound
}

func (p *StaticProvider) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(p.flights))
	copy(out, p.flights)
	return out, nil
}

func (p *StaticProvider) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	for _, f := range p.flights {
		if f.ID == id {
			flight := f
			return &flight, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

func (p *StaticProvider) ListHotelsForResort(ctx context.Context, resortID string) ([]domain.Hotel, error) {
	hotels := p.hotels[resortID]
	out := make([]domain.Hotel, len(hotels))
	copy(out, hotels)
	return out, nil
}

func (p *StaticProvider) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	for _, hotels := range p.hotels {
		for _, h := range hotels {
			if h.ID == id {
				hotel := h
				return &hotel, nil
			}
		}
	}
	return nil, domain.ErrHotelNotFound
}

func (p *StaticProvider) ListTransfersFrom(ctx context.Context, airportCode string) ([]domain.Transfer, error) {
	out := make([]domain.Transfer, 0)
	for _, t := range p.transfers {
		if t.Origin == airportCode {
			out = append(out, t)
		}
	}
	return out, nil
}

func (p *StaticProvider) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	for _, t := range p.transfers {
		if t.ID == id {
			transfer := t
			return &transfer, nil
		}
	}
	return nil, domain.ErrTransferNotFound
}

var _ Provider = (*StaticProvider)(nil)

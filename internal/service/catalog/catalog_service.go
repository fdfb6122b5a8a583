package catalog

import (
	"context"

	provider "github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/domain"
)

// ResortFilter narrows the resort listing; zero values match everything.
type ResortFilter struct {
	MaxBudget        float64
	DepartureAirport string
}

type CatalogUseCase interface {
	ListResorts(ctx context.Context, filter ResortFilter) ([]domain.Resort, error)
	GetResort(ctx context.Context, id string) (*domain.Resort, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	ListHotelsForResort(ctx context.Context, resortID string) ([]domain.Hotel, error)
	ListTransfersFrom(ctx context.Context, airportCode string) ([]domain.Transfer, error)
}

type Cache interface {
	GetResorts(ctx context.Context) ([]domain.Resort, error)
	SetResorts(ctx context.Context, resorts []domain.Resort) error
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type CatalogService struct {
	provider provider.Provider
	cache    Cache
}

// NewCatalogService wraps the static provider with a read-through cache.
// cache may be nil; lookups then always hit the provider.
func NewCatalogService(p provider.Provider, cache Cache) *CatalogService {
	return &CatalogService{provider: p, cache: cache}
}

func (s *CatalogService) ListResorts(ctx context.Context, filter ResortFilter) ([]domain.Resort, error) {
	resorts, err := s.allResorts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Resort, 0, len(resorts))
	for _, r := range resorts {
		if filter.MaxBudget > 0 && r.PackagePriceFrom > filter.MaxBudget {
			continue
		}
		if filter.DepartureAirport != "" && !hasAirport(r, filter.DepartureAirport) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *CatalogService) allResorts(ctx context.Context) ([]domain.Resort, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetResorts(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	resorts, err := s.provider.ListResorts(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetResorts(ctx, resorts)
	}
	return resorts, nil
}

func (s *CatalogService) GetResort(ctx context.Context, id string) (*domain.Resort, error) {
	return s.provider.GetResort(ctx, id)
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.provider.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *CatalogService) ListHotelsForResort(ctx context.Context, resortID string) ([]domain.Hotel, error) {
	return s.provider.ListHotelsForResort(ctx, resortID)
}

func (s *CatalogService) ListTransfersFrom(ctx context.Context, airportCode string) ([]domain.Transfer, error) {
	return s.provider.ListTransfersFrom(ctx, airportCode)
}

func hasAirport(r domain.Resort, code string) bool {
	for _, a := range r.NearestAirports {
		if a == code {
			return true
		}
	}
	return false
}

var _ CatalogUseCase = (*CatalogService)(nil)

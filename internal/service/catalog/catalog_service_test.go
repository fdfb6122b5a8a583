package catalog

import (
	"context"
	"testing"

	provider "github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetResorts(ctx context.Context) ([]domain.Resort, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resort), args.Error(1)
}

func (m *MockCache) SetResorts(ctx context.Context, resorts []domain.Resort) error {
	args := m.Called(ctx, resorts)
	return args.Error(0)
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestCatalogService_ListResorts_Filters(t *testing.T) {
	svc := NewCatalogService(provider.NewStaticProvider(), nil)
	ctx := context.Background()

	all, err := svc.ListResorts(ctx, ResortFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 6)

	budget, err := svc.ListResorts(ctx, ResortFilter{MaxBudget: 1300})
	assert.NoError(t, err)
	for _, r := range budget {
		assert.LessOrEqual(t, r.PackagePriceFrom, 1300.0)
	}

	gva, err := svc.ListResorts(ctx, ResortFilter{DepartureAirport: "GVA"})
	assert.NoError(t, err)
	assert.NotEmpty(t, gva)
	for _, r := range gva {
		assert.Contains(t, r.NearestAirports, "GVA")
	}

	none, err := svc.ListResorts(ctx, ResortFilter{MaxBudget: 1})
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogService_ListFlights_CacheMissPopulates(t *testing.T) {
	cache := &MockCache{}
	svc := NewCatalogService(provider.NewStaticProvider(), cache)
	ctx := context.Background()

	cache.On("GetFlights", ctx).Return(nil, nil)
	cache.On("SetFlights", ctx, mock.AnythingOfType("[]domain.Flight")).Return(nil)

	flights, err := svc.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Len(t, flights, 3)
	cache.AssertExpectations(t)
}

func TestCatalogService_ListFlights_CacheHit(t *testing.T) {
	cache := &MockCache{}
	svc := NewCatalogService(provider.NewStaticProvider(), cache)
	ctx := context.Background()

	cached := []domain.Flight{{ID: "flight-9", Origin: "LHR", Destination: "ZRH"}}
	cache.On("GetFlights", ctx).Return(cached, nil)

	flights, err := svc.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	cache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestCatalogService_ListTransfersFrom(t *testing.T) {
	svc := NewCatalogService(provider.NewStaticProvider(), nil)
	ctx := context.Background()

	gva, err := svc.ListTransfersFrom(ctx, "GVA")
	assert.NoError(t, err)
	assert.Len(t, gva, 3)
	for _, tr := range gva {
		assert.Equal(t, "GVA", tr.Origin)
	}

	// Unknown origin is an empty result, not an error.
	none, err := svc.ListTransfersFrom(ctx, "ZRH")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogService_GetResort(t *testing.T) {
	svc := NewCatalogService(provider.NewStaticProvider(), nil)
	ctx := context.Background()

	resort, err := svc.GetResort(ctx, "chamonix")
	assert.NoError(t, err)
	assert.Equal(t, "Chamonix", resort.Name)

	_, err = svc.GetResort(ctx, "nowhere")
	assert.ErrorIs(t, err, domain.ErrResortNotFound)
}

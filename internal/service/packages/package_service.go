package packages

import (
	"context"

	provider "github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/session"
	"github.com/alpinetrips/skipack/internal/workflow"
)

// State is what the presentation layer renders: the current step, the
// selection, the quote (nil until the selection is complete) and the
// passenger-count bounds.
type State struct {
	Step          workflow.Step
	Selection     session.Selection
	Quote         *domain.PackageQuote
	MinPassengers int
	MaxPassengers int
}

type PackageUseCase interface {
	EnsureSession(sessionID string) string
	State(ctx context.Context, sessionID string) (*State, error)
	SelectFlight(ctx context.Context, sessionID, flightID string) (*State, error)
	SelectHotel(ctx context.Context, sessionID, hotelID string) (*State, error)
	SelectTransfer(ctx context.Context, sessionID, transferID string) (*State, error)
	SetPassengerCount(ctx context.Context, sessionID string, count int) (*State, error)
	Navigate(ctx context.Context, sessionID string, step workflow.Step) (*State, error)
	TransferOptions(ctx context.Context, sessionID string) ([]domain.Transfer, error)
	Clear(ctx context.Context, sessionID string) error
}

// PackageService drives the per-session workflow controller and resolves
// catalog ids into immutable entities before handing them to the store.
type PackageService struct {
	sessions *workflow.Manager
	catalog  provider.Provider
}

func NewPackageService(sessions *workflow.Manager, catalog provider.Provider) *PackageService {
	return &PackageService{sessions: sessions, catalog: catalog}
}

func (s *PackageService) EnsureSession(sessionID string) string {
	id, _ := s.sessions.GetOrCreate(sessionID)
	return id
}

func (s *PackageService) State(ctx context.Context, sessionID string) (*State, error) {
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	return stateOf(ctrl), nil
}

func (s *PackageService) SelectFlight(ctx context.Context, sessionID, flightID string) (*State, error) {
	flight, err := s.catalog.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	ctrl.SelectFlight(flight)
	return stateOf(ctrl), nil
}

func (s *PackageService) SelectHotel(ctx context.Context, sessionID, hotelID string) (*State, error) {
	hotel, err := s.catalog.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	ctrl.SelectHotel(hotel)
	return stateOf(ctrl), nil
}

func (s *PackageService) SelectTransfer(ctx context.Context, sessionID, transferID string) (*State, error) {
	transfer, err := s.catalog.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	ctrl.SelectTransfer(transfer)
	return stateOf(ctrl), nil
}

// SetPassengerCount applies count if it is within bounds. An out-of-range
// count is silently ignored and the prior state returned; input limits are
// the presentation layer's job.
func (s *PackageService) SetPassengerCount(ctx context.Context, sessionID string, count int) (*State, error) {
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	ctrl.SetPassengerCount(count)
	return stateOf(ctrl), nil
}

func (s *PackageService) Navigate(ctx context.Context, sessionID string, step workflow.Step) (*State, error) {
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	if err := ctrl.Navigate(step); err != nil {
		return nil, err
	}
	return stateOf(ctrl), nil
}

// TransferOptions returns the transfers departing from the selected
// flight's destination airport. No selected flight, or no match, yields an
// empty list — an empty state for the UI, never an error.
func (s *PackageService) TransferOptions(ctx context.Context, sessionID string) ([]domain.Transfer, error) {
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	sel := ctrl.Selection()
	if sel.Flight == nil {
		return []domain.Transfer{}, nil
	}
	return s.catalog.ListTransfersFrom(ctx, sel.Flight.Destination)
}

func (s *PackageService) Clear(ctx context.Context, sessionID string) error {
	_, ctrl := s.sessions.GetOrCreate(sessionID)
	ctrl.Reset()
	return nil
}

func stateOf(ctrl *workflow.Controller) *State {
	step, sel, q := ctrl.State()
	return &State{
		Step:          step,
		Selection:     sel,
		Quote:         q,
		MinPassengers: domain.MinPassengers,
		MaxPassengers: domain.MaxPassengers,
	}
}

var _ PackageUseCase = (*PackageService)(nil)

package users

import (
	"context"
	"errors"
	"sync"
	"time"

	provider "github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type LoginInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UserUseCase interface {
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	UserIDFromToken(token string) (string, error)
	Bookings(ctx context.Context, userID string) ([]domain.Booking, error)
	ToggleFavorite(ctx context.Context, userID, resortID string) (bool, error)
	Favorites(ctx context.Context, userID string) ([]string, error)
}

type FavoritesStore interface {
	ToggleFavorite(ctx context.Context, userID, resortID string) (bool, error)
	ListFavorites(ctx context.Context, userID string) ([]string, error)
}

// UserService is the mock auth collaborator: login is a stub that accepts
// any email and issues a signed token carrying the user id. Accounts live
// in memory only.
type UserService struct {
	bookings  repository.BookingRepository
	favorites FavoritesStore
	catalog   provider.Provider
	jwtSecret []byte
	tokenTTL  time.Duration

	mu    sync.Mutex
	users map[string]domain.User // keyed by email
}

func NewUserService(
	bookings repository.BookingRepository,
	favorites FavoritesStore,
	catalog provider.Provider,
	jwtSecret string,
	tokenTTL time.Duration,
) *UserService {
	return &UserService{
		bookings:  bookings,
		favorites: favorites,
		catalog:   catalog,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		users:     make(map[string]domain.User),
	}
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	if input.Email == "" {
		return nil, "", errors.New("email is required")
	}

	s.mu.Lock()
	user, ok := s.users[input.Email]
	if !ok {
		user = domain.User{
			ID:        uuid.NewString(),
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Locale:    "en-GB",
			Currency:  "EUR",
		}
		s.users[input.Email] = user
	}
	s.mu.Unlock()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) UserIDFromToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

func (s *UserService) Bookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if s.bookings == nil {
		return []domain.Booking{}, nil
	}
	return s.bookings.ListByUser(ctx, userID)
}

func (s *UserService) ToggleFavorite(ctx context.Context, userID, resortID string) (bool, error) {
	if _, err := s.catalog.GetResort(ctx, resortID); err != nil {
		return false, err
	}
	return s.favorites.ToggleFavorite(ctx, userID, resortID)
}

func (s *UserService) Favorites(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.ListFavorites(ctx, userID)
}

var _ UserUseCase = (*UserService)(nil)

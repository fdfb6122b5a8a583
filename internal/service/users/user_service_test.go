package users

import (
	"context"
	"testing"
	"time"

	provider "github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoritesStore struct {
	mock.Mock
}

func (m *MockFavoritesStore) ToggleFavorite(ctx context.Context, userID, resortID string) (bool, error) {
	args := m.Called(ctx, userID, resortID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritesStore) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func newTestUserService(favorites FavoritesStore) *UserService {
	return NewUserService(nil, favorites, provider.NewStaticProvider(), "test-secret", time.Hour)
}

func TestUserService_Login(t *testing.T) {
	svc := newTestUserService(nil)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, LoginInput{Email: "ski@example.com", FirstName: "Anna", LastName: "Berg"})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ski@example.com", user.Email)
	assert.Equal(t, "EUR", user.Currency)

	// Repeat logins resolve to the same account.
	again, _, err := svc.Login(ctx, LoginInput{Email: "ski@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestUserService_Login_RequiresEmail(t *testing.T) {
	svc := newTestUserService(nil)

	_, _, err := svc.Login(context.Background(), LoginInput{})
	assert.Error(t, err)
}

func TestUserService_TokenRoundTrip(t *testing.T) {
	svc := newTestUserService(nil)

	user, token, err := svc.Login(context.Background(), LoginInput{Email: "ski@example.com"})
	assert.NoError(t, err)

	userID, err := svc.UserIDFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, err = svc.UserIDFromToken("not-a-token")
	assert.Error(t, err)
}

func TestUserService_TokenRejectedWithWrongSecret(t *testing.T) {
	svc := newTestUserService(nil)
	other := NewUserService(nil, nil, provider.NewStaticProvider(), "other-secret", time.Hour)

	_, token, err := svc.Login(context.Background(), LoginInput{Email: "ski@example.com"})
	assert.NoError(t, err)

	_, err = other.UserIDFromToken(token)
	assert.Error(t, err)
}

func TestUserService_ToggleFavorite(t *testing.T) {
	favorites := &MockFavoritesStore{}
	svc := newTestUserService(favorites)
	ctx := context.Background()

	favorites.On("ToggleFavorite", ctx, "user-1", "chamonix").Return(true, nil)

	fav, err := svc.ToggleFavorite(ctx, "user-1", "chamonix")
	assert.NoError(t, err)
	assert.True(t, fav)
	favorites.AssertExpectations(t)
}

func TestUserService_ToggleFavorite_UnknownResort(t *testing.T) {
	favorites := &MockFavoritesStore{}
	svc := newTestUserService(favorites)

	_, err := svc.ToggleFavorite(context.Background(), "user-1", "atlantis")
	assert.ErrorIs(t, err, domain.ErrResortNotFound)
	favorites.AssertNotCalled(t, "ToggleFavorite", mock.Anything, mock.Anything, mock.Anything)
}

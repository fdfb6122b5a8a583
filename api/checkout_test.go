package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutUseCase is a mock implementation of checkout.CheckoutUseCase
type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) Finalize(ctx context.Context, sessionID, userID string) (*domain.Booking, *domain.Notification, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(*domain.Notification), args.Error(2)
}

func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func newCheckoutRouter(service *MockCheckoutUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCheckoutHandler(service, stubAuth("user-1")).Register(router.Group("/api"))
	return router
}

func TestCheckoutHandler_Finalize(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	router := newCheckoutRouter(mockService)

	booking := &domain.Booking{
		ID:            "booking-1",
		UserID:        "user-1",
		QuoteID:       "quote-1",
		Status:        domain.BookingStatusConfirmed,
		PaymentIntent: "pi_abc123",
		VoucherURL:    "/vouchers/sample.pdf",
		CreatedAt:     time.Now(),
	}
	notification := &domain.Notification{
		Kind:    domain.NotificationSuccess,
		Message: "Booking confirmed! Your ski trip is all set.",
	}
	mockService.On("Finalize", mock.Anything, "session-1", "user-1").Return(booking, notification, nil)

	req := httptest.NewRequest("POST", "/api/checkout", nil)
	req.Header.Set(SessionHeader, "session-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	got := resp["booking"].(map[string]interface{})
	assert.Equal(t, "booking-1", got["id"])
	assert.Equal(t, "CONFIRMED", got["status"])
	note := resp["notification"].(map[string]interface{})
	assert.Equal(t, "success", note["kind"])

	mockService.AssertExpectations(t)
}

func TestCheckoutHandler_Finalize_ExpiredQuote(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	router := newCheckoutRouter(mockService)

	mockService.On("Finalize", mock.Anything, "session-1", "user-1").Return(nil, nil, domain.ErrQuoteExpired)

	req := httptest.NewRequest("POST", "/api/checkout", nil)
	req.Header.Set(SessionHeader, "session-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestCheckoutHandler_Finalize_IncompleteSelection(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	router := newCheckoutRouter(mockService)

	mockService.On("Finalize", mock.Anything, "", "user-1").Return(nil, nil, domain.ErrIncompleteSelection)

	req := httptest.NewRequest("POST", "/api/checkout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

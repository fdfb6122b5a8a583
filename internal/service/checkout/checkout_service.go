package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/kafka"
	"github.com/alpinetrips/skipack/internal/repository"
	"github.com/alpinetrips/skipack/internal/workflow"
	"github.com/google/uuid"
)

const confirmedMessage = "Booking confirmed! Your ski trip is all set."

type CheckoutUseCase interface {
	Finalize(ctx context.Context, sessionID, userID string) (*domain.Booking, *domain.Notification, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// CheckoutService converts a complete, unexpired quote into a confirmed
// booking. Payment is trusted to have succeeded upstream; the payment
// intent reference is synthetic.
type CheckoutService struct {
	sessions           *workflow.Manager
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CheckoutServiceOption func(*CheckoutService)

func WithNotificationsTopic(topic string) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.notificationsTopic = topic
	}
}

func NewCheckoutService(
	sessions *workflow.Manager,
	bookings repository.BookingRepository,
	producer Producer,
	bookingTopic string,
	opts ...CheckoutServiceOption,
) *CheckoutService {
	service := &CheckoutService{
		sessions:     sessions,
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Finalize checks the quote preconditions, emits the booking to the
// persistence collaborator, publishes the booking and notification events
// and only then clears the session. On any rejection the selection and
// quote stay untouched so the user can recover.
func (s *CheckoutService) Finalize(ctx context.Context, sessionID, userID string) (*domain.Booking, *domain.Notification, error) {
	ctrl := s.sessions.Get(sessionID)
	if ctrl == nil {
		return nil, nil, domain.ErrIncompleteSelection
	}

	q := ctrl.Quote()
	if q == nil || !ctrl.Selection().Complete() {
		return nil, nil, domain.ErrIncompleteSelection
	}
	if q.Expired(time.Now()) {
		return nil, nil, domain.ErrQuoteExpired
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		QuoteID:       q.ID,
		Status:        domain.BookingStatusConfirmed,
		PaymentIntent: "pi_" + uuid.NewString(),
		VoucherURL:    "/vouchers/sample.pdf",
		CreatedAt:     time.Now(),
	}

	if s.bookings != nil {
		if err := s.bookings.Create(ctx, booking); err != nil {
			return nil, nil, fmt.Errorf("store booking: %w", err)
		}
	}

	notification := &domain.Notification{
		Kind:    domain.NotificationSuccess,
		Message: confirmedMessage,
	}

	if err := s.publish(ctx, "booking_confirmed", booking, q, notification); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed event for booking %s: %v", booking.ID, err)
	}

	ctrl.Reset()

	return booking, notification, nil
}

func (s *CheckoutService) publish(ctx context.Context, eventType string, booking *domain.Booking, q *domain.PackageQuote, n *domain.Notification) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		QuoteID:    booking.QuoteID,
		Status:     string(booking.Status),
		TotalPrice: q.TotalPrice,
		VoucherURL: booking.VoucherURL,
		CreatedAt:  booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, kafka.NotificationEvent{
			UserID:    booking.UserID,
			BookingID: booking.ID,
			Kind:      string(n.Kind),
			Message:   n.Message,
		})
	}
	return nil
}

var _ CheckoutUseCase = (*CheckoutService)(nil)

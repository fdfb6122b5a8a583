package email

import (
	"context"
	"fmt"

	"github.com/alpinetrips/skipack/internal/kafka"
)

// Sender delivers the checkout confirmation to the user. Stubbed to
// stdout; a real mailer would render the voucher and send it.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	fmt.Printf("notify user %s about booking %s: [%s] %s\n", event.UserID, event.BookingID, event.Kind, event.Message)
	return nil
}

package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID            string
	UserID        string
	QuoteID       string
	Status        BookingStatus
	PaymentIntent string
	VoucherURL    string
	CreatedAt     time.Time
}

type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Locale    string
	Currency  string
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// Notification is the user-facing payload emitted alongside a state
// change (e.g. a confirmed checkout); rendering is the caller's concern.
type Notification struct {
	Kind    NotificationKind
	Message string
}

package domain

import "errors"

var (
	// ErrIncompleteSelection is returned when a quote or checkout is
	// requested before all three legs are chosen. Recoverable: the user
	// goes back and completes the package.
	ErrIncompleteSelection = errors.New("package selection is incomplete")

	// ErrQuoteExpired is returned when checkout is attempted at or after
	// the quote's expiry time.
	ErrQuoteExpired = errors.New("quote has expired, please rebuild the package")

	// ErrStepLocked is returned on navigation to a step whose prior legs
	// are not yet selected.
	ErrStepLocked = errors.New("step is not reachable yet")

	ErrResortNotFound   = errors.New("resort not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

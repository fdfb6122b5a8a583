package api

import (
	"errors"
	"net/http"

	"github.com/alpinetrips/skipack/internal/domain"
)

// SessionHeader carries the browsing-session id; the package handlers
// issue one on first contact and echo it back on every response.
const SessionHeader = "X-Session-ID"

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrIncompleteSelection),
		errors.Is(err, domain.ErrStepLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrQuoteExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrResortNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrTransferNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

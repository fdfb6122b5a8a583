package api

import (
	"net/http"

	"github.com/alpinetrips/skipack/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service checkout.CheckoutUseCase
	auth    gin.HandlerFunc
}

func NewCheckoutHandler(service checkout.CheckoutUseCase, auth gin.HandlerFunc) *CheckoutHandler {
	return &CheckoutHandler{service: service, auth: auth}
}

func (h *CheckoutHandler) Register(router *gin.RouterGroup) {
	router.POST("/checkout", h.auth, h.finalize)
}

type checkoutResponse struct {
	Booking      bookingResponse      `json:"booking"`
	Notification notificationResponse `json:"notification"`
}

type notificationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (h *CheckoutHandler) finalize(c *gin.Context) {
	sessionID := c.GetHeader(SessionHeader)
	booking, notification, err := h.service.Finalize(c.Request.Context(), sessionID, c.GetString(userIDKey))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, checkoutResponse{
		Booking: toBookingResponse(*booking),
		Notification: notificationResponse{
			Kind:    string(notification.Kind),
			Message: notification.Message,
		},
	})
}

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/service/users"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/auth/login", h.login)

	authed := router.Group("/", h.Authenticate)
	authed.GET("/users/me/bookings", h.bookings)
	authed.GET("/users/me/favorites", h.favorites)
	authed.POST("/resorts/:id/favorite", h.toggleFavorite)
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Locale    string `json:"locale"`
	Currency  string `json:"currency"`
}

type bookingResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	QuoteID       string `json:"quote_id"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent"`
	VoucherURL    string `json:"voucher_url,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type favoriteResponse struct {
	ResortID string `json:"resort_id"`
	Favorite bool   `json:"favorite"`
}

// Authenticate resolves the bearer token into a user id. Login itself is
// a stub, but checkout and account routes still need to know who the
// caller is.
func (h *UserHandler) Authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	userID, err := h.service.UserIDFromToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.Set(userIDKey, userID)
	c.Next()
}

func (h *UserHandler) login(c *gin.Context) {
	var req users.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: userResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Locale:    user.Locale,
			Currency:  user.Currency,
		},
	})
}

func (h *UserHandler) bookings(c *gin.Context) {
	bookings, err := h.service.Bookings(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) favorites(c *gin.Context) {
	favorites, err := h.service.Favorites(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *UserHandler) toggleFavorite(c *gin.Context) {
	resortID := c.Param("id")
	favorite, err := h.service.ToggleFavorite(c.Request.Context(), c.GetString(userIDKey), resortID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, favoriteResponse{ResortID: resortID, Favorite: favorite})
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		QuoteID:       b.QuoteID,
		Status:        string(b.Status),
		PaymentIntent: b.PaymentIntent,
		VoucherURL:    b.VoucherURL,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

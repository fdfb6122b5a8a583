package api

import (
	"net/http"
	"time"

	"github.com/alpinetrips/skipack/internal/service/packages"
	"github.com/alpinetrips/skipack/internal/workflow"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	service packages.PackageUseCase
}

func NewPackageHandler(service packages.PackageUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("/package", h.state)
	router.POST("/package/flight", h.selectFlight)
	router.POST("/package/hotel", h.selectHotel)
	router.POST("/package/transfer", h.selectTransfer)
	router.PUT("/package/passengers", h.setPassengers)
	router.POST("/package/step", h.navigate)
	router.GET("/package/transfers", h.transferOptions)
	router.DELETE("/package", h.clear)
}

type selectFlightRequest struct {
	FlightID string `json:"flight_id"`
}

type selectHotelRequest struct {
	HotelID string `json:"hotel_id"`
}

type selectTransferRequest struct {
	TransferID string `json:"transfer_id"`
}

type setPassengersRequest struct {
	Count int `json:"count"`
}

type navigateRequest struct {
	Step string `json:"step"`
}

type quoteResponse struct {
	ID             string  `json:"id"`
	FlightTotal    float64 `json:"flight_total"`
	HotelTotal     float64 `json:"hotel_total"`
	TransferTotal  float64 `json:"transfer_total"`
	TotalPrice     float64 `json:"total_price"`
	PricePerPerson float64 `json:"price_per_person"`
	CreatedAt      string  `json:"created_at"`
	ExpiresAt      string  `json:"expires_at"`
}

type packageStateResponse struct {
	Step          string            `json:"step"`
	Flight        *flightResponse   `json:"flight"`
	Hotel         *hotelResponse    `json:"hotel"`
	Transfer      *transferResponse `json:"transfer"`
	Passengers    int               `json:"passengers"`
	MinPassengers int               `json:"min_passengers"`
	MaxPassengers int               `json:"max_passengers"`
	Quote         *quoteResponse    `json:"quote"`
}

// session resolves the browsing session from the request header, creating
// one when absent, and echoes the id back so the client can stick to it.
func (h *PackageHandler) session(c *gin.Context) string {
	id := h.service.EnsureSession(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	return id
}

func (h *PackageHandler) state(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), h.session(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.SelectFlight(c.Request.Context(), h.session(c), req.FlightID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) selectHotel(c *gin.Context) {
	var req selectHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.SelectHotel(c.Request.Context(), h.session(c), req.HotelID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) selectTransfer(c *gin.Context) {
	var req selectTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.SelectTransfer(c.Request.Context(), h.session(c), req.TransferID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) setPassengers(c *gin.Context) {
	var req setPassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An out-of-range count is ignored, not an error: the response carries
	// the retained prior value.
	state, err := h.service.SetPassengerCount(c.Request.Context(), h.session(c), req.Count)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step, ok := workflow.ParseStep(req.Step)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step"})
		return
	}

	state, err := h.service.Navigate(c.Request.Context(), h.session(c), step)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *PackageHandler) transferOptions(c *gin.Context) {
	transfers, err := h.service.TransferOptions(c.Request.Context(), h.session(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, toTransferResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PackageHandler) clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), h.session(c)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toStateResponse(state *packages.State) packageStateResponse {
	resp := packageStateResponse{
		Step:          string(state.Step),
		Passengers:    state.Selection.Passengers,
		MinPassengers: state.MinPassengers,
		MaxPassengers: state.MaxPassengers,
	}
	if state.Selection.Flight != nil {
		f := toFlightResponse(*state.Selection.Flight)
		resp.Flight = &f
	}
	if state.Selection.Hotel != nil {
		h := toHotelResponse(*state.Selection.Hotel)
		resp.Hotel = &h
	}
	if state.Selection.Transfer != nil {
		t := toTransferResponse(*state.Selection.Transfer)
		resp.Transfer = &t
	}
	if state.Quote != nil {
		resp.Quote = &quoteResponse{
			ID:             state.Quote.ID,
			FlightTotal:    state.Quote.FlightTotal,
			HotelTotal:     state.Quote.HotelTotal,
			TransferTotal:  state.Quote.TransferTotal,
			TotalPrice:     state.Quote.TotalPrice,
			PricePerPerson: state.Quote.PricePerPerson,
			CreatedAt:      state.Quote.CreatedAt.Format(time.RFC3339),
			ExpiresAt:      state.Quote.ExpiresAt.Format(time.RFC3339),
		}
	}
	return resp
}

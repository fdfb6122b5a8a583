package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/alpinetrips/skipack/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/resorts", h.listResorts)
	router.GET("/resorts/:id", h.getResort)
	router.GET("/resorts/:id/hotels", h.listHotels)
	router.GET("/flights", h.listFlights)
	router.GET("/transfers", h.listTransfers)
}

type resortResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	ImageURL         string   `json:"image_url"`
	Description      string   `json:"description"`
	PackagePriceFrom float64  `json:"package_price_from"`
	LiftCount        int      `json:"lift_count"`
	SlopeKilometers  int      `json:"slope_kilometers"`
	HighestElevation int      `json:"highest_elevation"`
	LowestElevation  int      `json:"lowest_elevation"`
	NearestAirports  []string `json:"nearest_airports"`
	Features         []string `json:"features"`
	Rating           float64  `json:"rating"`
}

type hotelResponse struct {
	ID                 string   `json:"id"`
	ResortID           string   `json:"resort_id"`
	Name               string   `json:"name"`
	ImageURL           string   `json:"image_url"`
	StarRating         int      `json:"star_rating"`
	LiftDistanceMeters int      `json:"lift_distance_meters"`
	PricePerNight      float64  `json:"price_per_night"`
	Amenities          []string `json:"amenities"`
	Lat                float64  `json:"lat"`
	Lng                float64  `json:"lng"`
}

type flightResponse struct {
	ID            string  `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Carrier       string  `json:"carrier"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	CabinClass    string  `json:"cabin_class"`
}

type transferResponse struct {
	ID              string  `json:"id"`
	Mode            string  `json:"mode"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

func (h *CatalogHandler) listResorts(c *gin.Context) {
	var filter catalog.ResortFilter
	if budget := c.Query("budget"); budget != "" {
		v, err := strconv.ParseFloat(budget, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget"})
			return
		}
		filter.MaxBudget = v
	}
	filter.DepartureAirport = c.Query("airport")

	resorts, err := h.service.ListResorts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]resortResponse, 0, len(resorts))
	for _, r := range resorts {
		out = append(out, toResortResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getResort(c *gin.Context) {
	resort, err := h.service.GetResort(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResortResponse(*resort))
}

func (h *CatalogHandler) listHotels(c *gin.Context) {
	hotels, err := h.service.ListHotelsForResort(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]hotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, toHotelResponse(hotel))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listFlights(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listTransfers(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing from airport code"})
		return
	}

	transfers, err := h.service.ListTransfersFrom(c.Request.Context(), from)
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

func toResortResponse(r domain.Resort) resortResponse {
	return resortResponse{
		ID:               r.ID,
		Name:             r.Name,
		Country:          r.Country,
		ImageURL:         r.ImageURL,
		Description:      r.Description,
		PackagePriceFrom: r.PackagePriceFrom,
		LiftCount:        r.LiftCount,
		SlopeKilometers:  r.SlopeKilometers,
		HighestElevation: r.HighestElevation,
		LowestElevation:  r.LowestElevation,
		NearestAirports:  r.NearestAirports,
		Features:         r.Features,
		Rating:           r.Rating,
	}
}

func toHotelResponse(h domain.Hotel) hotelResponse {
	return hotelResponse{
		ID:                 h.ID,
		ResortID:           h.ResortID,
		Name:               h.Name,
		ImageURL:           h.ImageURL,
		StarRating:         h.StarRating,
		LiftDistanceMeters: h.LiftDistanceMeters,
		PricePerNight:      h.PricePerNight,
		Amenities:          h.Amenities,
		Lat:                h.Lat,
		Lng:                h.Lng,
	}
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:            f.ID,
		Origin:        f.Origin,
		Destination:   f.Destination,
		Carrier:       f.Carrier,
		DepartureTime: f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   f.ArrivalTime.Format(time.RFC3339),
		Price:         f.Price,
		CabinClass:    string(f.CabinClass),
	}
}

func toTransferResponse(t domain.Transfer) transferResponse {
	return transferResponse{
		ID:              t.ID,
		Mode:            string(t.Mode),
		Origin:          t.Origin,
		Destination:     t.Destination,
		Price:           t.Price,
		DurationMinutes: t.DurationMinutes,
	}
}

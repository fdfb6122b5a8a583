package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alpinetrips/skipack/internal/catalog"
	"github.com/alpinetrips/skipack/internal/quote"
	"github.com/alpinetrips/skipack/internal/service/packages"
	"github.com/alpinetrips/skipack/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPackageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := quote.NewEngine(quote.DefaultStayNights, quote.DefaultTTL)
	manager := workflow.NewManager(engine, time.Hour)
	service := packages.NewPackageService(manager, catalog.NewStaticProvider())

	router := gin.New()
	NewPackageHandler(service).Register(router.Group("/api"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestPackageHandler_Flow(t *testing.T) {
	router := newPackageRouter()

	// First contact issues a session id.
	w, state := doJSON(t, router, "GET", "/api/package", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	sessionID := w.Header().Get(SessionHeader)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, "flight", state["step"])
	assert.Nil(t, state["quote"])
	assert.Equal(t, float64(2), state["passengers"])

	// Review is gated until the package is complete.
	w, _ = doJSON(t, router, "POST", "/api/package/step", sessionID, gin.H{"step": "review"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, state = doJSON(t, router, "POST", "/api/package/flight", sessionID, gin.H{"flight_id": "flight-2"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hotel", state["step"])

	w, state = doJSON(t, router, "POST", "/api/package/hotel", sessionID, gin.H{"hotel_id": "hotel-2"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "transfer", state["step"])

	w, state = doJSON(t, router, "POST", "/api/package/transfer", sessionID, gin.H{"transfer_id": "transfer-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "review", state["step"])

	q := state["quote"].(map[string]interface{})
	assert.Equal(t, 440.0, q["flight_total"])
	assert.Equal(t, 2450.0, q["hotel_total"])
	assert.Equal(t, 160.0, q["transfer_total"])
	assert.Equal(t, 3050.0, q["total_price"])
	assert.Equal(t, 1525.0, q["price_per_person"])
}

func TestPackageHandler_TransferOptionsFilteredBySelectedFlight(t *testing.T) {
	router := newPackageRouter()

	w, _ := doJSON(t, router, "GET", "/api/package", "", nil)
	sessionID := w.Header().Get(SessionHeader)

	// No flight selected: empty offering, not an error.
	req := httptest.NewRequest("GET", "/api/package/transfers", nil)
	req.Header.Set(SessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	doJSON(t, router, "POST", "/api/package/flight", sessionID, gin.H{"flight_id": "flight-2"})

	req = httptest.NewRequest("GET", "/api/package/transfers", nil)
	req.Header.Set(SessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var transfers []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &transfers))
	assert.Len(t, transfers, 3)
	for _, tr := range transfers {
		assert.Equal(t, "GVA", tr["origin"])
	}
}

func TestPackageHandler_PassengerCountRejectionKeepsValue(t *testing.T) {
	router := newPackageRouter()

	w, _ := doJSON(t, router, "GET", "/api/package", "", nil)
	sessionID := w.Header().Get(SessionHeader)

	w, state := doJSON(t, router, "PUT", "/api/package/passengers", sessionID, gin.H{"count": 3})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), state["passengers"])

	w, state = doJSON(t, router, "PUT", "/api/package/passengers", sessionID, gin.H{"count": 11})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), state["passengers"])
}

func TestPackageHandler_UnknownFlight(t *testing.T) {
	router := newPackageRouter()

	w, _ := doJSON(t, router, "GET", "/api/package", "", nil)
	sessionID := w.Header().Get(SessionHeader)

	w, _ = doJSON(t, router, "POST", "/api/package/flight", sessionID, gin.H{"flight_id": "flight-99"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPackageHandler_Clear(t *testing.T) {
	router := newPackageRouter()

	w, _ := doJSON(t, router, "GET", "/api/package", "", nil)
	sessionID := w.Header().Get(SessionHeader)

	doJSON(t, router, "POST", "/api/package/flight", sessionID, gin.H{"flight_id": "flight-2"})
	doJSON(t, router, "PUT", "/api/package/passengers", sessionID, gin.H{"count": 5})

	w, _ = doJSON(t, router, "DELETE", "/api/package", sessionID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, state := doJSON(t, router, "GET", "/api/package", sessionID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "flight", state["step"])
	assert.Nil(t, state["flight"])
	assert.Equal(t, float64(5), state["passengers"])
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-reservation-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	bc := NewBookingController(nil) // handlers under test reject before touching the service
	r.POST("/api/bookings", bc.CreateBooking)
	r.GET("/api/bookings/confirmation/:number", bc.GetBookingByConfirmation)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	r := newBookingTestRouter()
	w, envelope := doJSON(t, r, http.MethodPost, "/api/bookings", `{"roomId": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.NotEmpty(t, envelope["errors"])
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	r := newBookingTestRouter()
	body := `{
		"roomId": 1,
		"checkIn": "01/08/2025",
		"checkOut": "2025-08-03",
		"numberOfGuests": 2,
		"guestName": "Jane Doe",
		"guestEmail": "jane@example.com",
		"guestPhone": "555-0100",
		"paymentMethod": "card"
	}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["message"], "checkIn")
}

func TestCreateBookingRejectsUnknownPaymentMethod(t *testing.T) {
	r := newBookingTestRouter()
	body := `{
		"roomId": 1,
		"checkIn": "2025-08-01",
		"checkOut": "2025-08-03",
		"numberOfGuests": 2,
		"guestName": "Jane Doe",
		"guestEmail": "jane@example.com",
		"guestPhone": "555-0100",
		"paymentMethod": "crypto"
	}`
	w, envelope := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, envelope["message"], "payment method")
}

func TestGetBookingByConfirmationRejectsBadFormat(t *testing.T) {
	r := newBookingTestRouter()
	w, envelope := doJSON(t, r, http.MethodGet, "/api/bookings/confirmation/nope", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{services.ErrRoomNotFound, http.StatusNotFound},
		{services.ErrBookingNotFound, http.StatusNotFound},
		{services.ErrRoomNotAvailable, http.StatusConflict},
		{services.ErrRoomNumberTaken, http.StatusConflict},
		{services.ErrInvalidDateRange, http.StatusBadRequest},
		{services.ErrOccupancyExceeded, http.StatusBadRequest},
		{services.ErrInvalidTransition, http.StatusBadRequest},
		{services.ErrAlreadyCancelled, http.StatusBadRequest},
		{services.ErrCompletedBooking, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrAccountLocked, http.StatusLocked},
		{fmt.Errorf("validation: bad input"), http.StatusBadRequest},
		{fmt.Errorf("db exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := gin.New()
		r.GET("/t", func(c *gin.Context) { respondServiceError(c, tc.err) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)

		var envelope map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["success"])
		if tc.want == http.StatusInternalServerError {
			assert.NotContains(t, envelope["message"], "exploded")
		}
	}
}

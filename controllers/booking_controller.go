// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-reservation-api/models"
	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	RoomID         uint   `json:"roomId" binding:"required"`
	CheckIn        string `json:"checkIn" binding:"required"`
	CheckOut       string `json:"checkOut" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required,min=1"`
	GuestName      string `json:"guestName" binding:"required"`
	GuestEmail     string `json:"guestEmail" binding:"required,email"`
	GuestPhone     string `json:"guestPhone" binding:"required"`
	GuestAddress   string `json:"guestAddress"`
	PaymentMethod  string `json:"paymentMethod" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	TransactionID string `json:"transactionId"`
}

type CancelBookingRequest struct {
	Reason       string  `json:"reason" binding:"required"`
	RefundAmount float64 `json:"refundAmount"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseBookingDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking (POST /api/bookings)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	checkIn, ok := parseBookingDate(req.CheckIn)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a YYYY-MM-DD date.")
		return
	}
	checkOut, ok := parseBookingDate(req.CheckOut)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a YYYY-MM-DD date.")
		return
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown payment method.")
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(services.CreateBookingInput{
		RoomID:         req.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		GuestAddress:   req.GuestAddress,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Booking created.", booking)
}

// GetBookings (GET /api/bookings?status=&roomId=)
func (bc *BookingController) GetBookings(c *gin.Context) {
	filters := services.BookingFilters{Status: c.Query("status")}
	if raw := c.Query("roomId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid roomId filter.")
			return
		}
		filters.RoomID = uint(id)
	}
	if filters.Status != "" && !models.IsValidBookingStatus(filters.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown status filter.")
		return
	}

	bookings, err := bc.BookingSvc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Bookings retrieved.", bookings)
}

// GetBookingByReference (GET /api/bookings/:ref)
func (bc *BookingController) GetBookingByReference(c *gin.Context) {
	booking, err := bc.BookingSvc.GetByReference(c.Param("ref"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking retrieved.", booking)
}

// GetBookingByConfirmation (GET /api/bookings/confirmation/:number)
func (bc *BookingController) GetBookingByConfirmation(c *gin.Context) {
	number := c.Param("number")
	if !utils.IsValidConfirmationNumber(number) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid confirmation number format.")
		return
	}
	booking, err := bc.BookingSvc.GetByConfirmationNumber(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking retrieved.", booking)
}

// UpdateBookingStatus (PATCH /api/bookings/:ref/status)
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	booking, err := bc.BookingSvc.UpdateStatus(c.Param("ref"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking status updated.", booking)
}

// UpdateBookingPayment (PATCH /api/bookings/:ref/payment)
func (bc *BookingController) UpdateBookingPayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	booking, err := bc.BookingSvc.UpdatePayment(c.Param("ref"), req.PaymentStatus, req.TransactionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Payment updated.", booking)
}

// CancelBooking (PATCH /api/bookings/:ref/cancel)
func (bc *BookingController) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	booking, err := bc.BookingSvc.Cancel(c.Param("ref"), req.Reason, req.RefundAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking cancelled.", booking)
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

// serviceErrorMessages maps sentinel errors to client-facing messages.
var serviceErrorMessages = map[error]string{
	services.ErrRoomNotFound:      "Room not found.",
	services.ErrRoomUnavailable:   "Room is not open for booking.",
	services.ErrRoomNumberTaken:   "Room number already exists.",
	services.ErrRoomHasBookings:   "Room still has active bookings.",
	services.ErrInvalidDateRange:  "Check-out must be after check-in and check-in cannot be in the past.",
	services.ErrOccupancyExceeded: "Guest count exceeds the room's maximum occupancy.",
	services.ErrRoomNotAvailable:  "Room is not available for the selected dates.",

	services.ErrBookingNotFound:   "Booking not found.",
	services.ErrInvalidStatus:     "Unknown status value.",
	services.ErrInvalidTransition: "Status change is not allowed from the booking's current state.",
	services.ErrAlreadyCancelled:  "Booking is already cancelled.",
	services.ErrCompletedBooking:  "Booking is already checked out and cannot be cancelled.",
	services.ErrInvalidRefund:     "Refund amount must be between zero and the booking total.",
	services.ErrInvalidPayment:    "Unknown payment status value.",

	services.ErrContactNotFound: "Contact inquiry not found.",

	services.ErrAdminNotFound:      "Admin user not found.",
	services.ErrUsernameTaken:      "Username already exists.",
	services.ErrInvalidCredentials: "Invalid username or password.",
	services.ErrAccountLocked:      "Account is temporarily locked after repeated failed logins.",
}

// respondServiceError maps a service error onto the response envelope.
// Unexpected errors are logged and surfaced as a generic 500 so internal
// detail never leaks.
func respondServiceError(c *gin.Context, err error) {
	for sentinel, message := range serviceErrorMessages {
		if errors.Is(err, sentinel) {
			utils.JSONError(c, statusForServiceError(sentinel), message)
			return
		}
	}
	if strings.HasPrefix(err.Error(), "validation:") {
		utils.JSONError(c, http.StatusBadRequest,
			strings.TrimSpace(strings.TrimPrefix(err.Error(), "validation:")))
		return
	}
	log.Printf("❌ unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error.")
}

func statusForServiceError(err error) int {
	switch err {
	case services.ErrRoomNotFound, services.ErrBookingNotFound,
		services.ErrContactNotFound, services.ErrAdminNotFound:
		return http.StatusNotFound
	case services.ErrRoomNumberTaken, services.ErrUsernameTaken,
		services.ErrRoomNotAvailable, services.ErrRoomHasBookings:
		return http.StatusConflict
	case services.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case services.ErrAccountLocked:
		return http.StatusLocked
	default:
		return http.StatusBadRequest
	}
}

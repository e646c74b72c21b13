package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything else is treated as an unexpected failure.
var (
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrRoomUnavailable   = errors.New("room_unavailable")
	ErrRoomNumberTaken   = errors.New("room_number_taken")
	ErrRoomHasBookings   = errors.New("room_has_active_bookings")
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrOccupancyExceeded = errors.New("occupancy_exceeded")
	ErrRoomNotAvailable  = errors.New("room_not_available_for_dates")

	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidTransition  = errors.New("invalid_status_transition")
	ErrAlreadyCancelled   = errors.New("booking_already_cancelled")
	ErrCompletedBooking   = errors.New("booking_already_checked_out")
	ErrInvalidRefund      = errors.New("invalid_refund_amount")
	ErrInvalidPayment     = errors.New("invalid_payment_update")

	ErrContactNotFound = errors.New("contact_not_found")

	ErrAdminNotFound      = errors.New("admin_not_found")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountLocked      = errors.New("account_locked")
)

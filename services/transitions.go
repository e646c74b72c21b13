package services

import "hotel-reservation-api/models"

// statusTransitions is the explicit booking state machine:
// pending -> confirmed -> checked-in -> checked-out, with cancellation
// allowed from pending/confirmed and no-show from confirmed.
// checked-out, cancelled and no-show are terminal.
var statusTransitions = map[string][]string{
	models.BookingStatusPending: {
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
	},
	models.BookingStatusConfirmed: {
		models.BookingStatusCheckedIn,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	},
	models.BookingStatusCheckedIn: {
		models.BookingStatusCheckedOut,
	},
	models.BookingStatusCheckedOut: {},
	models.BookingStatusCancelled:  {},
	models.BookingStatusNoShow:     {},
}

// CanTransition reports whether newStatus is reachable from current.
func CanTransition(current, newStatus string) bool {
	for _, s := range statusTransitions[current] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transitions exist.
func IsTerminalStatus(status string) bool {
	next, ok := statusTransitions[status]
	return ok && len(next) == 0
}

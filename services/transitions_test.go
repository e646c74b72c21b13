package services

import (
	"testing"

	"hotel-reservation-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCheckedIn, false},
		{models.BookingStatusPending, models.BookingStatusNoShow, false},

		{models.BookingStatusConfirmed, models.BookingStatusCheckedIn, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusNoShow, true},
		{models.BookingStatusConfirmed, models.BookingStatusCheckedOut, false},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},

		{models.BookingStatusCheckedIn, models.BookingStatusCheckedOut, true},
		{models.BookingStatusCheckedIn, models.BookingStatusCancelled, false},

		{models.BookingStatusCheckedOut, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
		{models.BookingStatusNoShow, models.BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalStatus(models.BookingStatusCheckedOut))
	assert.True(t, IsTerminalStatus(models.BookingStatusCancelled))
	assert.True(t, IsTerminalStatus(models.BookingStatusNoShow))

	assert.False(t, IsTerminalStatus(models.BookingStatusPending))
	assert.False(t, IsTerminalStatus(models.BookingStatusConfirmed))
	assert.False(t, IsTerminalStatus(models.BookingStatusCheckedIn))
}

func TestUnknownStatusHasNoTransitions(t *testing.T) {
	assert.False(t, CanTransition("bogus", models.BookingStatusConfirmed))
	assert.False(t, IsTerminalStatus("bogus"))
}

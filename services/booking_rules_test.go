package services

import (
	"testing"
	"time"

	"hotel-reservation-api/models"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestOverlapsRangeHalfOpen(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut string
		want                 bool
	}{
		{"back-to-back turnover day is free", "2025-08-01", "2025-08-03", "2025-08-03", "2025-08-05", false},
		{"reversed back-to-back is free too", "2025-08-03", "2025-08-05", "2025-08-01", "2025-08-03", false},
		{"straddling stay collides", "2025-08-01", "2025-08-03", "2025-08-02", "2025-08-04", true},
		{"identical window collides", "2025-08-01", "2025-08-03", "2025-08-01", "2025-08-03", true},
		{"contained stay collides", "2025-08-01", "2025-08-10", "2025-08-03", "2025-08-05", true},
		{"containing stay collides", "2025-08-03", "2025-08-05", "2025-08-01", "2025-08-10", true},
		{"fully before is free", "2025-08-01", "2025-08-02", "2025-08-05", "2025-08-07", false},
		{"fully after is free", "2025-08-09", "2025-08-12", "2025-08-05", "2025-08-07", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := overlapsRange(day(t, tc.aIn), day(t, tc.aOut), day(t, tc.bIn), day(t, tc.bOut))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConflictStatusesHoldRoom(t *testing.T) {
	assert.ElementsMatch(t, []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCheckedIn,
	}, conflictStatuses)

	assert.NotContains(t, conflictStatuses, models.BookingStatusCancelled)
	assert.NotContains(t, conflictStatuses, models.BookingStatusNoShow)
	assert.NotContains(t, conflictStatuses, models.BookingStatusCheckedOut)
}

func TestCancelGuard(t *testing.T) {
	assert.NoError(t, cancelGuard(models.BookingStatusPending))
	assert.NoError(t, cancelGuard(models.BookingStatusConfirmed))
	assert.NoError(t, cancelGuard(models.BookingStatusCheckedIn))

	assert.ErrorIs(t, cancelGuard(models.BookingStatusCancelled), ErrAlreadyCancelled)
	assert.ErrorIs(t, cancelGuard(models.BookingStatusCheckedOut), ErrCompletedBooking)
	assert.ErrorIs(t, cancelGuard(models.BookingStatusNoShow), ErrCompletedBooking)
}

func TestPaymentAutoConfirms(t *testing.T) {
	assert.True(t, paymentAutoConfirms(models.PaymentStatusCompleted, models.BookingStatusPending))

	// A completed payment on an already confirmed booking is a no-op for status.
	assert.False(t, paymentAutoConfirms(models.PaymentStatusCompleted, models.BookingStatusConfirmed))
	assert.False(t, paymentAutoConfirms(models.PaymentStatusCompleted, models.BookingStatusCheckedIn))
	assert.False(t, paymentAutoConfirms(models.PaymentStatusPending, models.BookingStatusPending))
	assert.False(t, paymentAutoConfirms(models.PaymentStatusFailed, models.BookingStatusPending))
	assert.False(t, paymentAutoConfirms(models.PaymentStatusRefunded, models.BookingStatusPending))
}

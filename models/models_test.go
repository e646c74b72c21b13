package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityForInquiry(t *testing.T) {
	assert.Equal(t, ContactPriorityHigh, PriorityForInquiry(InquiryComplaint))
	assert.Equal(t, ContactPriorityHigh, PriorityForInquiry(InquiryBooking))
	assert.Equal(t, ContactPriorityNormal, PriorityForInquiry(InquiryGeneral))
	assert.Equal(t, ContactPriorityNormal, PriorityForInquiry(InquiryFeedback))
	assert.Equal(t, ContactPriorityNormal, PriorityForInquiry(InquiryOther))
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleHasPermission(RoleAdmin, PermAdminsProvision))
	assert.True(t, RoleHasPermission(RoleManager, PermRoomsManage))
	assert.True(t, RoleHasPermission(RoleStaff, PermBookingsManage))

	assert.False(t, RoleHasPermission(RoleManager, PermAdminsProvision))
	assert.False(t, RoleHasPermission(RoleStaff, PermRoomsManage))
	assert.False(t, RoleHasPermission(RoleStaff, PermAnalyticsView))
	assert.False(t, RoleHasPermission("unknown", PermBookingsView))
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	perms := PermissionsForRole(RoleStaff)
	assert.NotEmpty(t, perms)

	perms[0] = "tampered"
	assert.NotContains(t, PermissionsForRole(RoleStaff), "tampered")
}

func TestStatusValidators(t *testing.T) {
	for _, s := range []string{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow,
	} {
		assert.True(t, IsValidBookingStatus(s), s)
	}
	assert.False(t, IsValidBookingStatus("Confirmed"))
	assert.False(t, IsValidBookingStatus(""))

	assert.True(t, IsValidPaymentStatus(PaymentStatusCompleted))
	assert.False(t, IsValidPaymentStatus("done"))

	assert.True(t, IsValidPaymentMethod(PaymentMethodCard))
	assert.False(t, IsValidPaymentMethod("crypto"))

	assert.True(t, IsValidRoomType(RoomTypePresidential))
	assert.False(t, IsValidRoomType("penthouse"))

	assert.True(t, IsValidInquiryType(InquiryComplaint))
	assert.False(t, IsValidInquiryType("spam"))

	assert.True(t, IsValidContactStatus(ContactStatusInProgress))
	assert.False(t, IsValidContactStatus("open"))

	assert.True(t, IsValidRole(RoleManager))
	assert.False(t, IsValidRole("owner"))
}

func TestAdminLocked(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(10 * time.Minute)
	past := now.Add(-10 * time.Minute)

	assert.False(t, (&Admin{}).Locked(now))
	assert.False(t, (&Admin{LockedUntil: &past}).Locked(now))
	assert.True(t, (&Admin{LockedUntil: &future}).Locked(now))
}

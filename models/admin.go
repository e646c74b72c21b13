package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin roles, most to least privileged.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Permission names checked by the route middleware.
const (
	PermRoomsManage     = "rooms.manage"
	PermBookingsView    = "bookings.view"
	PermBookingsManage  = "bookings.manage"
	PermContactsManage  = "contacts.manage"
	PermAnalyticsView   = "analytics.view"
	PermAdminsProvision = "admins.provision"
)

// rolePermissions is the authoritative permission set per role.
var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermRoomsManage, PermBookingsView, PermBookingsManage,
		PermContactsManage, PermAnalyticsView, PermAdminsProvision,
	},
	RoleManager: {
		PermRoomsManage, PermBookingsView, PermBookingsManage,
		PermContactsManage, PermAnalyticsView,
	},
	RoleStaff: {
		PermBookingsView, PermBookingsManage, PermContactsManage,
	},
}

func IsValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// RoleHasPermission reports whether the given role carries the permission.
func RoleHasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// PermissionsForRole returns a copy of the role's permission set.
func PermissionsForRole(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"size:255" json:"fullName"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"size:50" json:"role"`

	FailedLoginAttempts int        `gorm:"column:failed_login_attempts;default:0" json:"-"`
	LockedUntil         *time.Time `gorm:"column:locked_until" json:"-"`
}

// Locked reports whether the account is currently locked out.
func (a *Admin) Locked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

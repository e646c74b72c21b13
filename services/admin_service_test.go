package services

import (
	"testing"
	"time"

	"hotel-reservation-api/models"

	"github.com/stretchr/testify/assert"
)

func TestNextFailedAttempts(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts up while unlocked", func(t *testing.T) {
		admin := &models.Admin{FailedLoginAttempts: 2}
		assert.Equal(t, 3, nextFailedAttempts(admin, now))
	})

	t.Run("first miss starts at one", func(t *testing.T) {
		admin := &models.Admin{}
		assert.Equal(t, 1, nextFailedAttempts(admin, now))
	})

	t.Run("expired lock starts a fresh window", func(t *testing.T) {
		expired := now.Add(-time.Minute)
		admin := &models.Admin{
			FailedLoginAttempts: maxFailedLogins,
			LockedUntil:         &expired,
		}
		got := nextFailedAttempts(admin, now)
		assert.Equal(t, 1, got)
		assert.Less(t, got, maxFailedLogins, "one miss after an expired lock must not re-lock")
	})

	t.Run("active lock keeps counting", func(t *testing.T) {
		active := now.Add(5 * time.Minute)
		admin := &models.Admin{
			FailedLoginAttempts: maxFailedLogins,
			LockedUntil:         &active,
		}
		assert.Equal(t, maxFailedLogins+1, nextFailedAttempts(admin, now))
	})
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "manager@hotel.local", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "manager@hotel.local", claims.Username)
	assert.Equal(t, "manager", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenUsesSecretSetAfterStartup(t *testing.T) {
	// The secret often arrives via .env, loaded well after package init.
	t.Setenv("JWT_SECRET", "operator-provided-secret")

	token, err := GenerateToken(3, "staff@hotel.local", "staff")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.AdminID)

	// A token minted under the operator secret must die with it.
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(1, "admin@hotel.local", "admin")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

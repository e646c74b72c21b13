package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCode(t *testing.T) {
	code, err := RandomCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.Contains(t, codeCharset, string(r))
	}

	_, err = RandomCode(0)
	assert.Error(t, err)
}

func TestGenerateBookingReference(t *testing.T) {
	ref, err := GenerateBookingReference()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "BK-"))
	// "BK-" + "20060102-150405" + "-" + 4 chars
	assert.Len(t, ref, 3+15+1+4)
}

func TestBookingReferencesDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref, err := GenerateBookingReference()
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestGenerateConfirmationNumber(t *testing.T) {
	conf, err := GenerateConfirmationNumber()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(conf, "CNF-"))
	assert.Len(t, conf, 12)
	assert.True(t, IsValidConfirmationNumber(conf))
}

func TestIsValidConfirmationNumber(t *testing.T) {
	assert.True(t, IsValidConfirmationNumber("CNF-8F2K1Q4Z"))
	assert.True(t, IsValidConfirmationNumber("cnf-8f2k1q4z"))
	assert.True(t, IsValidConfirmationNumber("  CNF-ABCD1234  "))

	assert.False(t, IsValidConfirmationNumber(""))
	assert.False(t, IsValidConfirmationNumber("CNF-SHORT"))
	assert.False(t, IsValidConfirmationNumber("BK-8F2K1Q4Z"))
	assert.False(t, IsValidConfirmationNumber("CNF-8F2K1Q4!"))
}

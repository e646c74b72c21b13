package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "g***t@example.com", MaskEmail("guest@example.com"))
	assert.Equal(t, "f********k@hotel.example", MaskEmail("front.desk@hotel.example"))
	assert.Equal(t, "a*@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "a@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
	assert.Equal(t, "g***t@example.com", MaskEmail("  guest@example.com "))
}

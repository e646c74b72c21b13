package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode returns n characters from A-Z0-9, e.g. "AB4D93KF".
// crypto/rand + big.Int avoids modulo bias.
func RandomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference builds the primary booking identifier:
// a time seed plus a random suffix, e.g. "BK-20250801-153047-X7Q2".
// Not cryptographically unique; the unique index on the column plus a
// create retry covers the negligible collision chance.
func GenerateBookingReference() (string, error) {
	suffix, err := RandomCode(4)
	if err != nil {
		return "", err
	}
	return "BK-" + time.Now().UTC().Format("20060102-150405") + "-" + suffix, nil
}

// GenerateConfirmationNumber builds the secondary human-facing identifier
// assigned once a booking reaches confirmed, e.g. "CNF-8F2K1Q4Z".
func GenerateConfirmationNumber() (string, error) {
	code, err := RandomCode(8)
	if err != nil {
		return "", err
	}
	return "CNF-" + code, nil
}

// IsValidConfirmationNumber checks the "CNF-" + 8 chars shape.
func IsValidConfirmationNumber(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "CNF-") || len(s) != 12 {
		return false
	}
	for _, r := range s[4:] {
		if !strings.ContainsRune(codeCharset, r) {
			return false
		}
	}
	return true
}

package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// NormalizeEmail lower-cases and trims an email address.  Every path
// that stores or looks up an account applies this first, so the same
// address never registers twice under different spellings.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword bcrypt-hashes a plain password at the given cost.  The
// cost comes from config so tests can run with a cheap one.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

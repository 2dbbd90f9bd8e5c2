package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken returns an unpredictable opaque credential string.
func NewSessionToken() (string, error) {
	return GenerateToken(32)
}

// GenerateToken returns n random bytes encoded as raw URL-safe base64.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

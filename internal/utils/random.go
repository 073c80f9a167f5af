package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomString returns n bytes of cryptographic randomness encoded as
// unpadded URL-safe base64.
func RandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

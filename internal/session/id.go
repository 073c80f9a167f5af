package session

import (
	"fmt"

	"github.com/mfndnc/lab-authentication-with-passport/internal/utils"
)

// GenerateID generates a cryptographically secure session ID.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {
	id, err := utils.RandomString(32)
	if err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return id, nil
}

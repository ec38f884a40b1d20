package security

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateSessionID creates a new UUID for refresh-session identification
func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateConfirmationCode creates a short random hex code, used for
// account-deletion confirmation links
func GenerateConfirmationCode() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

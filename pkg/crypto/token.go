package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

var randomRead = rand.Read

// GenerateRandomToken generates a random token of specified length
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateSessionID generates a 64-character session identifier
func GenerateSessionID() (string, error) {
	return GenerateRandomToken(32)
}

// GenerateGuestSubject generates a synthetic subject for guest accounts. Guest
// accounts have no provider identity, so the subject is minted locally.
func GenerateGuestSubject() (string, error) {
	token, err := GenerateRandomToken(16)
	if err != nil {
		return "", err
	}
	return "guest:" + token, nil
}

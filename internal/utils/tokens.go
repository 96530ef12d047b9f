package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// NewToken returns a hex-encoded random token. Used for email
// verification and password reset, so the source must be crypto/rand.
func NewToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 бит по умолчанию
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// TokenExpiry returns now + hours.
func TokenExpiry(hours int) time.Time {
	if hours <= 0 {
		hours = 24
	}
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

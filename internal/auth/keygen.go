// Package auth provides key generation and credential hashing.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Key format: sk-sm-v1-{secret}
// Example: sk-sm-v1-4F8D2E1B9C7A5F3D2E1B9C7A5F3D2E1B
const (
	// KeyPrefix is the fixed prefix of every issued key.
	KeyPrefix = "sk-sm-v1-"
	// KeySecretLen is the secret length (hex encoded 16 bytes).
	KeySecretLen = 32
)

// keyFormatRegex validates the key format.
var keyFormatRegex = regexp.MustCompile(`^sk-sm-v1-[0-9A-F]{32}$`)

// GenerateKey creates a new opaque API key.
// The secret is 16 bytes from crypto/rand, hex encoded uppercase.
// Entropy exhaustion is the only failure path and is fatal for the request.
func GenerateKey() (string, error) {
	secretBytes := make([]byte, 16)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", fmt.Errorf("generate key secret: %w", err)
	}

	secret := strings.ToUpper(hex.EncodeToString(secretBytes))

	return KeyPrefix + secret, nil
}

// ValidateKeyFormat checks if the key matches the expected format.
func ValidateKeyFormat(key string) bool {
	return keyFormatRegex.MatchString(key)
}

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewToken returns 32 lowercase hex characters drawn from a CSPRNG
// (a random UUID with separators stripped). It is used for session keys.
func NewToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}

// NewSalt returns a fresh per-password salt in the same format as [NewToken].
func NewSalt() (string, error) {
	return NewToken()
}

// NewAPIKey returns an experiment API key: two tokens, base64 encoded.
func NewAPIKey() (string, error) {
	first, err := NewToken()
	if err != nil {
		return "", err
	}
	second, err := NewToken()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(first + second)), nil
}

// Credential combines a salt and a password into the string that is hashed.
func Credential(salt, password string) string {
	return salt + "|" + password
}

// APIKeyCredential combines an API key salt and key into the string that is hashed.
func APIKeyCredential(keySalt, key string) string {
	return keySalt + "_" + key
}

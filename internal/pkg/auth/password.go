package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters and sizes for stored passwords
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// HashPassword derives a storable "hash.salt" string from a plain password.
// The salt is a random hex string and is used verbatim as scrypt input.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	key, err := derive(password, salt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// CheckPassword reports whether password matches a stored "hash.salt" value
func CheckPassword(stored, password string) bool {
	hashHex, salt, ok := strings.Cut(stored, ".")
	if !ok || hashHex == "" || salt == "" {
		return false
	}

	want, err := hex.DecodeString(hashHex)
	if err != nil || len(want) != scryptKeyLen {
		return false
	}

	got, err := derive(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

func derive(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive password key: %w", err)
	}
	return key, nil
}

// RandomSecret returns n random bytes hex encoded. Used for generated demo passwords.
func RandomSecret(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

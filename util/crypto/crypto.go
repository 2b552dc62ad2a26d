// Package crypto provides password hashing and verification backed by scrypt.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltBytes = 16
	keyBytes  = 64

	// scrypt cost parameters
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a scrypt key from the password with a random salt and
// returns the stored form "hex(key).hex(salt)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + saltHex, nil
}

// CheckPasswordHash verifies a password against a stored form produced by
// HashPassword. It returns false on malformed input rather than an error, and
// compares in constant time so the mismatch position does not leak.
func CheckPasswordHash(stored, password string) bool {
	hashHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok || hashHex == "" || saltHex == "" {
		return false
	}
	storedKey, err := hex.DecodeString(hashHex)
	if err != nil || len(storedKey) != keyBytes {
		return false
	}
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, keyBytes)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1
}

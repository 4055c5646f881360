// Package security holds the credential primitives used by the auth flow:
// keyed password hashing and bearer token issuance.
package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"
)

// SaltSize matches the HMAC-SHA-512 block size so the salt is used as the
// key without being pre-hashed.
const SaltSize = 128

// PasswordHasher computes HMAC-SHA-512 password hashes keyed by a per-user
// random salt.
type PasswordHasher struct {
	random io.Reader
}

// NewPasswordHasher returns a hasher drawing salts from crypto/rand.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{random: rand.Reader}
}

// Hash generates a fresh salt and returns the keyed hash of password.
func (h *PasswordHasher) Hash(password string) (hash, salt []byte, err error) {
	salt = make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	return computeHash(password, salt), salt, nil
}

// Verify recomputes the hash with the stored salt and compares the full
// sequence in constant time.
func (h *PasswordHasher) Verify(password string, hash, salt []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	return hmac.Equal(computeHash(password, salt), hash)
}

func computeHash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

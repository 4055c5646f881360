package domain

import (
	"fmt"
	"time"
)

// User is the persisted identity record. Hash and salt never leave the
// service boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	PasswordSalt []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrUserNotFound is returned by the credential store when no identity
// matches. The auth flow never surfaces it to callers.
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

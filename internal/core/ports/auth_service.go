package ports

import (
	"context"
	"time"
)

// AuthResult is returned by both auth flows.
type AuthResult struct {
	Token     string
	Email     string
	Username  string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

package ports

import (
	"context"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

// AuthRepository is the credential store for identity records.
type AuthRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no identity matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create assigns the id and returns the stored identity.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

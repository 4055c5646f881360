package ports

import (
	"context"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Order, error)
	// FindByID returns domain.ErrOrderNotFound when the id is unknown or malformed.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
}

// IdempotencyStore remembers which order an Idempotency-Key produced. Keys
// are scoped per caller so two users never share one.
type IdempotencyStore interface {
	// Lookup returns the order id stored for (scope, key), or "" when unseen.
	Lookup(ctx context.Context, scope, key string) (string, error)
	Remember(ctx context.Context, scope, key, orderID string) error
}

package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderInput carries all data needed to create a new order.
type CreateOrderInput struct {
	// UserID is the authenticated caller; it scopes IdempotencyKey.
	UserID         string
	ClientID       string
	Total          decimal.Decimal
	IdempotencyKey string
}

// UpdateOrderInput carries the fields an order update may change.
type UpdateOrderInput struct {
	Total decimal.Decimal
}

// OrderDTO is the service-level view of an order.
type OrderDTO struct {
	ID        string
	ClientID  string
	Total     decimal.Decimal
	OrderedAt time.Time
	// Replayed is true when the Idempotency-Key matched an existing order.
	Replayed bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	List(ctx context.Context) ([]OrderDTO, error)
	Get(ctx context.Context, id string) (*OrderDTO, error)
	ListByClient(ctx context.Context, clientID string) ([]OrderDTO, error)
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) error
	Delete(ctx context.Context, id string) error
}

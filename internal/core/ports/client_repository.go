package ports

import (
	"context"

	"github.com/orderdesk/orders-api/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	// FindByID returns domain.ErrClientNotFound when the id is unknown or malformed.
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// HasOrders reports whether at least one order references the client.
	HasOrders(ctx context.Context, id string) (bool, error)
}

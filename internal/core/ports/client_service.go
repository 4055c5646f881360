package ports

import (
	"context"
	"time"
)

// ClientInput carries the mutable client fields for create and update.
type ClientInput struct {
	Name  string
	Email string
}

// ClientDTO is the service-level view of a client.
type ClientDTO struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	List(ctx context.Context) ([]ClientDTO, error)
	Get(ctx context.Context, id string) (*ClientDTO, error)
	Create(ctx context.Context, input ClientInput) (*ClientDTO, error)
	Update(ctx context.Context, id string, input ClientInput) error
	Delete(ctx context.Context, id string) error
}

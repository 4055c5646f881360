package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-api/internal/core/domain"
	"github.com/orderdesk/orders-api/internal/core/ports"
	"github.com/orderdesk/orders-api/internal/core/rules"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]ports.ClientDTO, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out := make([]ports.ClientDTO, len(clients))
	for i, c := range clients {
		out[i] = toClientDTO(c)
	}
	return out, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*ports.ClientDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toClientDTO(c)
	return &dto, nil
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*ports.ClientDTO, error) {
	c := &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logger.Info().Str("client_id", c.ID).Msg("client created")
	dto := toClientDTO(c)
	return &dto, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c.Name = input.Name
	c.Email = input.Email
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete removes a client that owns no orders. The dependents check and the
// delete are separate store calls.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := rules.ValidateNoDependents(ctx, s.repo, id); err != nil {
		s.logger.Warn().Err(err).Str("client_id", id).Msg("client delete rejected")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func toClientDTO(c *domain.Client) ports.ClientDTO {
	return ports.ClientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

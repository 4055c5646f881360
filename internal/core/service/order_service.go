package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/orderdesk/orders-api/internal/core/domain"
	"github.com/orderdesk/orders-api/internal/core/ports"
	"github.com/orderdesk/orders-api/internal/core/rules"
)

type OrderService struct {
	repo        ports.OrderRepository
	clients     rules.ClientLookup
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger
}

// NewOrderService wires the order store, the client lookup used for
// reference checks and an optional idempotency store (nil disables replay).
func NewOrderService(
	repo ports.OrderRepository,
	clients rules.ClientLookup,
	idempotency ports.IdempotencyStore,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{repo: repo, clients: clients, idempotency: idempotency, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]ports.OrderDTO, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return toOrderDTOs(orders), nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*ports.OrderDTO, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

func (s *OrderService) ListByClient(ctx context.Context, clientID string) ([]ports.OrderDTO, error) {
	orders, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders by client: %w", err)
	}
	return toOrderDTOs(orders), nil
}

// Create validates the total and the client reference before anything is
// written. A known Idempotency-Key returns the order it produced earlier,
// provided the request names the same client and total.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderDTO, error) {
	total, err := rules.NormalizeOrderAmount(input.Total)
	if err != nil {
		return nil, err
	}

	replay, err := s.replay(ctx, input, total)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return replay, nil
	}

	if err := rules.ValidateClientReference(ctx, s.clients, input.ClientID); err != nil {
		return nil, err
	}

	o := &domain.Order{
		ClientID:  input.ClientID,
		Total:     total,
		OrderedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	if input.IdempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Remember(ctx, input.UserID, input.IdempotencyKey, o.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Str("order_id", o.ID).Str("client_id", o.ClientID).Str("total", o.Total.StringFixed(rules.TotalPlaces)).Msg("order created")
	dto := toOrderDTO(o)
	return &dto, nil
}

// replay returns the order previously created under the caller's key, or
// nil. Store failures are logged and treated as a miss. A key reused for a
// different client or total fails with domain.ErrIdempotencyKeyReused.
func (s *OrderService) replay(ctx context.Context, input ports.CreateOrderInput, total decimal.Decimal) (*ports.OrderDTO, error) {
	key := input.IdempotencyKey
	if key == "" || s.idempotency == nil {
		return nil, nil
	}

	orderID, err := s.idempotency.Lookup(ctx, input.UserID, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil, nil
	}
	if orderID == "" {
		return nil, nil
	}

	existing, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotent replay lookup failed")
		}
		return nil, nil
	}

	if existing.ClientID != input.ClientID || !existing.Total.Equal(total) {
		s.logger.Warn().Str("idempotency_key", key).Str("order_id", existing.ID).Msg("idempotency key reused with a different request")
		return nil, domain.ErrIdempotencyKeyReused
	}

	s.logger.Info().Str("idempotency_key", key).Str("order_id", existing.ID).Msg("idempotent replay")
	dto := toOrderDTO(existing)
	dto.Replayed = true
	return &dto, nil
}

// Update applies the same strictly-positive total rule as Create.
func (s *OrderService) Update(ctx context.Context, id string, input ports.UpdateOrderInput) error {
	total, err := rules.NormalizeOrderAmount(input.Total)
	if err != nil {
		return err
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	o.Total = total
	if err := s.repo.Update(ctx, o); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

func toOrderDTO(o *domain.Order) ports.OrderDTO {
	return ports.OrderDTO{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Total:     o.Total,
		OrderedAt: o.OrderedAt,
	}
}

func toOrderDTOs(orders []*domain.Order) []ports.OrderDTO {
	out := make([]ports.OrderDTO, len(orders))
	for i, o := range orders {
		out[i] = toOrderDTO(o)
	}
	return out
}

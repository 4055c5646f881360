package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultIdempotencyTTL bounds how long an Idempotency-Key replays the
// original order.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which order an Idempotency-Key produced.
// Key format: idempotency:orders:<user_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to
// DefaultIdempotencyTTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the order id recorded for the caller's key, or "" when the
// key is unknown.
func (s *IdempotencyStore) Lookup(ctx context.Context, userID, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records orderID under the caller's key. An existing entry is kept.
func (s *IdempotencyStore) Remember(ctx context.Context, userID, key, orderID string) error {
	if err := s.client.SetNX(ctx, s.key(userID, key), orderID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(userID, key string) string {
	return fmt.Sprintf("idempotency:orders:%s:%s", userID, key)
}

package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hedef100/academia-core/internal/models"
)

// RedisStore keeps the snapshot as a single value at the schema key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an established client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load fetches and decodes the stored snapshot.
func (s *RedisStore) Load(ctx context.Context) (*models.AppState, error) {
	data, err := s.client.Get(ctx, SchemaKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return decode(data)
}

// Save overwrites the stored snapshot. The value has no TTL; the
// snapshot lives until the next save or a schema key bump.
func (s *RedisStore) Save(ctx context.Context, state *models.AppState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, SchemaKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

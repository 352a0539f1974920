package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shoestore-api/internal/domain/cart"
	"shoestore-api/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Carts live in Redis keyed per user, one JSON blob per cart, refreshed on
// every write. The TTL keeps abandoned carts from accumulating forever.
const (
	keyPrefix = "cart:"
	cartTTL   = 30 * 24 * time.Hour
)

type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Load returns the stored cart, or a fresh empty cart when none exists.
func (s *RedisCartStore) Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, keyPrefix+userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err)
	}
	return &c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err)
	}
	if err := s.client.Set(ctx, keyPrefix+userID.String(), data, cartTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, keyPrefix+userID.String()).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart", err)
	}
	return nil
}

package tokenstore

import (
	"context"
	"errors"
	"time"

	"shoestore-api/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pwreset:"

// RedisTokenStore holds single-use password-reset tokens with a TTL.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, userID.String(), ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store reset token", err)
	}
	return nil
}

// Take consumes the token: it is deleted on read so it cannot be replayed.
func (s *RedisTokenStore) Take(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.GetDel(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, infra.WrapRepoErr("reset token not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to read reset token", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("malformed reset token payload", err)
	}
	return userID, nil
}

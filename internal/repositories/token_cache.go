package repositories

import (
	"fmt"
	"time"

	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mkarpushin/recipe-api/internal/logger"
)

// TokenCacheRepository caches token-to-user lookups in Redis so the
// auth guard does not hit Postgres on every request. Tokens are never
// rotated, so entries only need a TTL to bound memory.
type TokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewTokenCacheRepository creates a new repository instance with the given TTL
func NewTokenCacheRepository(client *redis.Client, expiration time.Duration) *TokenCacheRepository {
	return &TokenCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetUserID returns the cached owner of the token, or uuid.Nil on a cache miss
func (r *TokenCacheRepository) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	key := fmt.Sprintf("auth_token:%s", token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, nil
		}
		logger.Log.Errorw("token cache get failed", "error", err)
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("token cache holds malformed user id", "value", val, "error", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// SetUserID caches the owner of the token with the configured TTL
func (r *TokenCacheRepository) SetUserID(ctx context.Context, token string, userID uuid.UUID) error {
	key := fmt.Sprintf("auth_token:%s", token)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	if err != nil {
		logger.Log.Errorw("token cache set failed", "error", err)
	}

	return err
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gowheels/account-service/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache is a best-effort read-through cache of user records.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client, logger zerolog.Logger) *UserCache {
	return &UserCache{client: client, logger: logger}
}

// cachedUser carries the full record including the password hash, which the
// domain type deliberately excludes from JSON.
type cachedUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	ImageURL     string    `json:"image_url,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Get returns the cached record, or false on a miss or any cache error.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		}
		return nil, false
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, false
	}
	return &domain.User{
		ID:           cu.ID,
		Username:     cu.Username,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		ImageURL:     cu.ImageURL,
		Role:         cu.Role,
		CreatedAt:    cu.CreatedAt,
		UpdatedAt:    cu.UpdatedAt,
	}, true
}

// Set stores the record with a short TTL. Failures are logged and ignored.
func (c *UserCache) Set(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ImageURL:     user.ImageURL,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), raw, cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Str("user_id", user.ID).Msg("user cache write failed")
	}
}

// Invalidate drops the cached record after a mutation or delete.
func (c *UserCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}

func (c *UserCache) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}

package ports

import (
	"context"

	"github.com/gowheels/account-service/internal/core/domain"
)

// UserCache is a best-effort read-through cache of user records by id. A miss
// or a cache error is never fatal; callers fall back to the repository.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
	Invalidate(ctx context.Context, id string)
}

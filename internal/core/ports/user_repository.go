package ports

import (
	"context"

	"github.com/gowheels/account-service/internal/core/domain"
)

// UserRepository defines the persistence surface for user records. The store
// enforces uniqueness on username and email; Create and Update return the
// conflict sentinels when the constraint fires.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIdentifier resolves a sign-in identifier that may be either a
	// username or an email address.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/gowheels/account-service/internal/core/domain"
)

// CreateUserInput carries the fields of an admin- or peer-initiated create.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries a partial profile update. Nil pointers mean "leave
// unchanged". A password change requires both OldPassword and NewPassword.
type UpdateUserInput struct {
	Username    *string
	Email       *string
	OldPassword *string
	NewPassword *string
	// Image holds raw bytes for the media host; ImageContentType is the
	// uploaded file's MIME type.
	Image            []byte
	ImageContentType string
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Create is the authenticated create endpoint. callerRole gates admin-role
	// assignment.
	Create(ctx context.Context, callerRole string, input CreateUserInput) (*domain.User, error)
	// Update applies a partial self-service update. callerID/callerRole gate
	// updates to other users' records.
	Update(ctx context.Context, callerID, callerRole, targetID string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

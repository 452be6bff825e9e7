package service

import (
	"context"
	"errors"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// CredentialValidator composes the pure format clauses with live uniqueness
// lookups against the directory. The lookups are an early exit only: the
// storage unique index is the authoritative guard, and concurrent writers that
// slip past the pre-check are caught there.
type CredentialValidator struct {
	repo ports.UserRepository
}

func NewCredentialValidator(repo ports.UserRepository) *CredentialValidator {
	return &CredentialValidator{repo: repo}
}

// Username checks format and uniqueness.
func (v *CredentialValidator) Username(ctx context.Context, username string) error {
	if err := domain.ValidateUsername(username); err != nil {
		return err
	}
	_, err := v.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.ErrUsernameTaken
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// Email checks format and uniqueness against the lowercased address.
func (v *CredentialValidator) Email(ctx context.Context, email string) error {
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}
	_, err := v.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// AdminSeed holds the bootstrap admin account credentials.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// EnsureAdmin idempotently creates the bootstrap admin account at process
// start. A uniqueness conflict means the admin already exists and is logged
// and swallowed; any other failure is returned.
func EnsureAdmin(ctx context.Context, repo ports.UserRepository, hasher *Hasher, seed AdminSeed, logger zerolog.Logger) error {
	if _, err := repo.FindByEmail(ctx, domain.NormalizeEmail(seed.Email)); err == nil {
		return nil
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     seed.Username,
		Email:        domain.NormalizeEmail(seed.Email),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := repo.Create(ctx, admin); err != nil {
		if domain.IsConflict(err) {
			// Lost a race with another instance seeding the same account.
			logger.Info().Str("username", seed.Username).Msg("admin user already exists")
			return nil
		}
		return err
	}

	logger.Info().Str("username", seed.Username).Msg("admin user created")
	return nil
}

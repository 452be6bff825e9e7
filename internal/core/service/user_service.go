package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// UserService implements the directory CRUD surface.
type UserService struct {
	repo      ports.UserRepository
	validator *CredentialValidator
	hasher    *Hasher
	media     ports.MediaStore
	cache     ports.UserCache
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, validator *CredentialValidator, hasher *Hasher, media ports.MediaStore, cache ports.UserCache, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		media:     media,
		cache:     cache,
		logger:    logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, id); ok {
			return user, nil
		}
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, user)
	}
	return user, nil
}

// Create handles the authenticated create endpoint. Only admins may assign the
// admin role; the role defaults to customer when omitted.
func (s *UserService) Create(ctx context.Context, callerRole string, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role == domain.RoleAdmin && callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := domain.ValidateRole(role); err != nil {
		return nil, err
	}
	if err := s.validator.Username(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.validator.Email(ctx, input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a partial update. Non-admins may only update their own
// record. A password change requires the current password and rejects a no-op
// where the new password equals the old.
func (s *UserService) Update(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
	if targetID != callerID && callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		if err := s.validator.Username(ctx, *input.Username); err != nil {
			return nil, err
		}
		user.Username = *input.Username
	}

	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		if email != user.Email {
			if err := s.validator.Email(ctx, email); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}

	if input.OldPassword != nil && input.NewPassword != nil {
		if !s.hasher.Verify(*input.OldPassword, user.PasswordHash) {
			return nil, domain.ErrWrongPassword
		}
		if *input.OldPassword == *input.NewPassword {
			return nil, domain.ErrSamePassword
		}
		if err := domain.ValidatePassword(*input.NewPassword); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*input.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if len(input.Image) > 0 {
		url, err := s.media.Upload(ctx, input.Image, input.ImageContentType)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateImageURL(url); err != nil {
			return nil, err
		}
		user.ImageURL = url
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, updated.ID)
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete is a hard delete; the record is gone and subsequent reads yield
// not-found. Role gating happens at the middleware layer.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// AuthService implements signup, sign-in, and token refresh.
type AuthService struct {
	repo      ports.UserRepository
	validator *CredentialValidator
	hasher    *Hasher
	tokens    ports.TokenService
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, validator *CredentialValidator, hasher *Hasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// SignUp validates the candidate credentials, persists a customer account, and
// issues a token pair. The uniqueness pre-checks are an early exit; a
// concurrent duplicate that slips past them surfaces as ErrUserExists from the
// storage unique index.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*domain.User, *ports.TokenPair, error) {
	if err := s.validator.Username(ctx, username); err != nil {
		return nil, nil, err
	}
	if err := s.validator.Email(ctx, email); err != nil {
		return nil, nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        domain.NormalizeEmail(email),
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user signed up")
	return created, pair, nil
}

// SignIn resolves the identifier as username or email and verifies the
// password. The failure message distinguishes unknown username, unknown email,
// and wrong password; all three are unauthorized.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (*ports.TokenPair, error) {
	if identifier == "" || password == "" {
		return nil, &domain.ValidationError{Field: "credentials", Reason: "Missing username/email or password"}
	}

	byEmail := strings.Contains(identifier, "@")
	if byEmail {
		identifier = domain.NormalizeEmail(identifier)
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if byEmail {
				return nil, domain.ErrInvalidEmail
			}
			return nil, domain.ErrInvalidUsername
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidPassword
	}

	pair, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return pair, nil
}

// Refresh validates the refresh token and mints a new access token. The role
// claim is re-read from the persisted user, not trusted from the old token, so
// a role change takes effect on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Kind != ports.TokenKindRefresh {
		return "", domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	return s.tokens.IssueAccess(user.ID, user.Role)
}

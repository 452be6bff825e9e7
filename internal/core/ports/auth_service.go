package ports

import (
	"context"

	"github.com/gowheels/account-service/internal/core/domain"
)

// TokenPair carries the two credentials minted on signup and sign-in.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (*domain.User, *TokenPair, error)
	// SignIn authenticates by username or email.
	SignIn(ctx context.Context, identifier, password string) (*TokenPair, error)
	// Refresh mints a new access token from a refresh token, re-reading the
	// role claim from the current persisted user state.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// tokenClaims is the signed JWT payload: subject = user id, plus the role at
// issuance time and the token kind.
type tokenClaims struct {
	Role string          `json:"role"`
	Kind ports.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access and refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService builds a TokenService with day-based TTLs. Non-positive TTLs
// fall back to 1 day access / 30 days refresh.
func NewTokenService(secret string, accessDays, refreshDays int) *TokenService {
	if accessDays <= 0 {
		accessDays = 1
	}
	if refreshDays <= 0 {
		refreshDays = 30
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessDays) * 24 * time.Hour,
		refreshTTL: time.Duration(refreshDays) * 24 * time.Hour,
	}
}

// Issue mints an access/refresh pair for the user.
func (s *TokenService) Issue(userID, role string) (*ports.TokenPair, error) {
	access, err := s.sign(userID, role, ports.TokenKindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, role, ports.TokenKindRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess mints a single access token, used by the refresh flow.
func (s *TokenService) IssueAccess(userID, role string) (string, error) {
	return s.sign(userID, role, ports.TokenKindAccess, s.accessTTL)
}

// Parse verifies signature and expiry and returns the claims.
func (s *TokenService) Parse(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{
		UserID: claims.Subject,
		Role:   claims.Role,
		Kind:   claims.Kind,
	}, nil
}

func (s *TokenService) sign(userID, role string, kind ports.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

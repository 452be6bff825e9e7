package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", 1, 30)

	pair, err := svc.Issue("user_1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	access, err := svc.Parse(pair.AccessToken)
	if err != nil {
		t.Fatalf("Parse(access) returned error: %v", err)
	}
	if access.UserID != "user_1" || access.Role != domain.RoleCustomer {
		t.Fatalf("unexpected access claims: %+v", access)
	}
	if access.Kind != ports.TokenKindAccess {
		t.Fatalf("expected access kind, got %s", access.Kind)
	}

	refresh, err := svc.Parse(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Parse(refresh) returned error: %v", err)
	}
	if refresh.Kind != ports.TokenKindRefresh {
		t.Fatalf("expected refresh kind, got %s", refresh.Kind)
	}
}

func TestTokenService_IssueAccess(t *testing.T) {
	svc := NewTokenService("secret", 1, 30)

	token, err := svc.IssueAccess("user_2", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Kind != ports.TokenKindAccess || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", 1, 30).IssueAccess("user_1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b", 1, 30).Parse(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Parse_Malformed(t *testing.T) {
	svc := NewTokenService("secret", 1, 30)
	if _, err := svc.Parse("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Parse_Expired(t *testing.T) {
	svc := NewTokenService("secret", 1, 30)

	expired := tokenClaims{
		Role: domain.RoleCustomer,
		Kind: ports.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Parse_RejectsUnexpectedAlg(t *testing.T) {
	svc := NewTokenService("secret", 1, 30)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		Kind: ports.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Parse(unsigned); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for none alg, got %v", err)
	}
}

package ports

// TokenKind discriminates the two credentials the token service issues.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the transport-agnostic view of a parsed token.
type TokenClaims struct {
	UserID string
	Role   string
	Kind   TokenKind
}

// TokenService signs and verifies the stateless credentials. Expiry is the
// only invalidation mechanism; there is no revocation list.
type TokenService interface {
	Issue(userID, role string) (*TokenPair, error)
	IssueAccess(userID, role string) (string, error)
	// Parse verifies the signature and expiry and returns the claims. It fails
	// with domain.ErrInvalidToken on any malformed, expired, or mis-signed
	// token.
	Parse(token string) (*TokenClaims, error)
}

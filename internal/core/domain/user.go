package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User models an account holder. PasswordHash is never serialized; the image
// URL is set exclusively through the media upload flow.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ImageURL     string    `json:"image,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	// ErrUserExists is raised at the write boundary when the storage unique
	// constraint fires. The validator's pre-checks narrow it to ErrUsernameTaken
	// or ErrEmailTaken when they catch the duplicate first.
	ErrUserExists     = errors.New("username or email already exists")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrEmailTaken     = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrForbidden      = errors.New("access forbidden: insufficient permissions")
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSamePassword   = errors.New("new password cannot be the same as the old password")
	ErrWrongPassword  = errors.New("old password is incorrect")
	ErrBadCredentials = errors.New("invalid credentials")

	// Sign-in failures keep the original distinct messages; all map to 401.
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError reports the first policy clause a candidate field violated.
// Its message is surfaced verbatim to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsConflict reports whether err is one of the uniqueness sentinels.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUserExists) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken)
}

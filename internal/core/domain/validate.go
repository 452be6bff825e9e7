package domain

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidateUsername checks the username format clauses. Uniqueness is checked
// separately against the directory.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return &ValidationError{Field: "username", Reason: "Username should not be empty"}
	case len(username) < 3:
		return &ValidationError{Field: "username", Reason: "Username should be at least 3 characters long"}
	case !usernameRe.MatchString(username):
		return &ValidationError{Field: "username", Reason: "Username should contain only letters, numbers, and underscores"}
	}
	return nil
}

// ValidateEmail checks the email format clauses. Callers must lowercase the
// address before persisting; NormalizeEmail does that.
func ValidateEmail(email string) error {
	switch {
	case email == "":
		return &ValidationError{Field: "email", Reason: "Email should not be empty"}
	case !strings.Contains(email, "@"), !emailRe.MatchString(email):
		return &ValidationError{Field: "email", Reason: "Invalid email format"}
	}
	return nil
}

// NormalizeEmail lowercases an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// ValidatePassword enforces the composite password policy on set. The first
// violated clause is reported.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return &ValidationError{Field: "password", Reason: "Password should not be empty"}
	case len(password) < 6:
		return &ValidationError{Field: "password", Reason: "Password should be at least 6 characters long"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }):
		return &ValidationError{Field: "password", Reason: "Password should contain at least one uppercase letter"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }):
		return &ValidationError{Field: "password", Reason: "Password should contain at least one lowercase letter"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }):
		return &ValidationError{Field: "password", Reason: "Password should contain at least one digit"}
	case !strings.ContainsAny(password, passwordSymbols):
		return &ValidationError{Field: "password", Reason: "Password should contain at least one special character"}
	}
	return nil
}

// ValidateRole restricts roles to the two-value enum.
func ValidateRole(role string) error {
	if role != RoleCustomer && role != RoleAdmin {
		return &ValidationError{Field: "role", Reason: "Role should be either 'customer' or 'admin'"}
	}
	return nil
}

// ValidateImageURL requires an absolute HTTP(S) URL when an image is present.
func ValidateImageURL(url string) error {
	if url == "" {
		return nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return &ValidationError{Field: "image", Reason: "Image URL should be valid"}
	}
	return nil
}

package domain

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		username string
		wantErr  string
	}{
		{"valid_user1", ""},
		{"abc", ""},
		{"", "Username should not be empty"},
		{"ab", "Username should be at least 3 characters long"},
		{"bad name", "Username should contain only letters, numbers, and underscores"},
		{"bad-name!", "Username should contain only letters, numbers, and underscores"},
	}

	for _, tc := range cases {
		err := ValidateUsername(tc.username)
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("ValidateUsername(%q) = %v, want nil", tc.username, err)
			}
			continue
		}
		if err == nil || err.Error() != tc.wantErr {
			t.Fatalf("ValidateUsername(%q) = %v, want %q", tc.username, err, tc.wantErr)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"a@example.com", "first.last@sub.domain.org"} {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}
	for _, email := range []string{"", "nodomain", "no@tld", "spaces in@example.com"} {
		if ValidateEmail(email) == nil {
			t.Fatalf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		wantErr  string
	}{
		{"Abc123!@", ""},
		{"", "Password should not be empty"},
		{"Ab1!", "Password should be at least 6 characters long"},
		{"abc12345", "Password should contain at least one uppercase letter"},
		{"ABC12345", "Password should contain at least one lowercase letter"},
		{"Abcdefg!", "Password should contain at least one digit"},
		{"Abc12345", "Password should contain at least one special character"},
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("ValidatePassword(%q) = %v, want nil", tc.password, err)
			}
			continue
		}
		if err == nil || err.Error() != tc.wantErr {
			t.Fatalf("ValidatePassword(%q) = %v, want %q", tc.password, err, tc.wantErr)
		}
	}
}

func TestValidatePassword_ReportsValidationError(t *testing.T) {
	err := ValidatePassword("abc12345")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Field != "password" {
		t.Fatalf("unexpected field: %s", ve.Field)
	}
}

func TestValidateRole(t *testing.T) {
	if err := ValidateRole(RoleCustomer); err != nil {
		t.Fatalf("customer role rejected: %v", err)
	}
	if err := ValidateRole(RoleAdmin); err != nil {
		t.Fatalf("admin role rejected: %v", err)
	}
	if ValidateRole("superuser") == nil {
		t.Fatalf("expected error for unknown role")
	}
	if ValidateRole("") == nil {
		t.Fatalf("expected error for empty role")
	}
}

func TestValidateImageURL(t *testing.T) {
	if err := ValidateImageURL(""); err != nil {
		t.Fatalf("empty image URL should be allowed: %v", err)
	}
	if err := ValidateImageURL("https://cdn.example.com/a.png"); err != nil {
		t.Fatalf("https URL rejected: %v", err)
	}
	if err := ValidateImageURL("http://cdn.example.com/a.png"); err != nil {
		t.Fatalf("http URL rejected: %v", err)
	}
	if ValidateImageURL("ftp://cdn.example.com/a.png") == nil {
		t.Fatalf("expected error for non-http scheme")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("Alice@Example.COM"); got != "alice@example.com" {
		t.Fatalf("unexpected normalization: %s", got)
	}
}

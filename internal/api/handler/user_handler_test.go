package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	createFn func(ctx context.Context, callerRole string, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, callerRole string, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, callerRole, input)
}

func (s *stubUserService) Update(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, callerID, callerRole, targetID, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestUserHandlerList(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "alice", Role: domain.RoleAdmin},
				{ID: "u2", Username: "bob", Role: domain.RoleCustomer},
			}, nil
		},
	}
	h := NewUserHandler(svc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []*domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked into response: %s", rec.Body.String())
	}
}

func TestUserHandlerCreate_AdminRoleRequiresAdminCaller(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(ctx context.Context, callerRole string, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	e := newTestEcho()
	body := `{"username":"new_admin","email":"na@example.com","password":"Abc123!@","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandlerCreate_AdminCreatesAdmin(t *testing.T) {
	var gotInput ports.CreateUserInput
	h := NewUserHandler(&stubUserService{
		createFn: func(ctx context.Context, callerRole string, input ports.CreateUserInput) (*domain.User, error) {
			if callerRole != domain.RoleAdmin {
				t.Fatalf("expected admin caller, got %q", callerRole)
			}
			gotInput = input
			return &domain.User{ID: "u9", Username: input.Username, Role: input.Role}, nil
		},
	})

	e := newTestEcho()
	body := `{"username":"new_admin","email":"na@example.com","password":"Abc123!@","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotInput.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role in input, got %q", gotInput.Role)
	}
}

func TestUserHandlerGet_DefaultsToCaller(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u2" {
				t.Fatalf("expected caller id, got %q", id)
			}
			return &domain.User{ID: id, Username: "bob"}, nil
		},
	})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandlerGet_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/user/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandlerGet_MissingClaims(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestUserHandlerUpdate_PasswordChangeForm(t *testing.T) {
	var gotInput ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
			if callerID != "u2" || targetID != "u2" {
				t.Fatalf("unexpected ids: caller=%q target=%q", callerID, targetID)
			}
			gotInput = input
			return &domain.User{ID: targetID}, nil
		},
	})

	form := url.Values{}
	form.Set("old_password", "Abc123!@")
	form.Set("new_password", "Xyz789?#")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/api/user", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if gotInput.OldPassword == nil || *gotInput.OldPassword != "Abc123!@" {
		t.Fatalf("old password not forwarded")
	}
	if gotInput.NewPassword == nil || *gotInput.NewPassword != "Xyz789?#" {
		t.Fatalf("new password not forwarded")
	}
	if gotInput.Username != nil || gotInput.Email != nil {
		t.Fatalf("untouched fields should stay nil")
	}
}

func TestUserHandlerUpdate_PartialUsername(t *testing.T) {
	var gotInput ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: targetID}, nil
		},
	})

	form := url.Values{}
	form.Set("username", "renamed_user")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/api/user", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotInput.Username == nil || *gotInput.Username != "renamed_user" {
		t.Fatalf("username not forwarded")
	}
	if gotInput.OldPassword != nil || gotInput.NewPassword != nil {
		t.Fatalf("password fields should stay nil")
	}
}

func TestUserHandlerUpdate_OtherUserForbidden(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(ctx context.Context, callerID, callerRole, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	})

	form := url.Values{}
	form.Set("username", "renamed_user")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/api/user/u9", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u2", domain.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues("u9")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandlerDelete(t *testing.T) {
	var gotID string
	h := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/user/u2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "u2" {
		t.Fatalf("expected delete of u2, got %q", gotID)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "User deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestUserHandlerDelete_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/user/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gowheels/account-service/internal/core/domain"
)

// messageResponse is the standard envelope for errors and confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// respondError maps a service error to its status code and renders the
// message envelope.
func respondError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}
	code, msg := statusFor(err)
	return c.JSON(code, messageResponse{Message: msg})
}

// statusFor resolves domain errors to HTTP status codes. Validation and
// uniqueness conflicts both render 400; the message names the violated
// clause.
func statusFor(err error) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Reason
	}

	switch {
	case domain.IsConflict(err),
		errors.Is(err, domain.ErrSamePassword),
		errors.Is(err, domain.ErrWrongPassword):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrBadCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}

package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gowheels/account-service/internal/api/metrics"
	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// UserHandler handles the directory CRUD surface.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// List returns all users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds a user record. Any authenticated caller may create customers;
// assigning the admin role requires the admin role.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}
	if req.Role == domain.RoleAdmin && role != domain.RoleAdmin {
		return c.JSON(http.StatusForbidden, messageResponse{Message: "Only admins can assign the admin role"})
	}

	if _, err := h.userService.Create(c.Request().Context(), role, ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully"})
}

// Get returns one user record; an omitted id resolves to the caller.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  false  "User id (defaults to caller)"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		id = callerID
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a partial, form-encoded update to the target record; an
// omitted id resolves to the caller. Changing the password requires
// old_password and new_password; an attached image file is delegated to the
// media host.
//
// @Summary      Update user
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  false  "User id (defaults to caller)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	callerID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if targetID == "" {
		targetID = callerID
	}

	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid form payload"})
	}

	var input ports.UpdateUserInput
	if form.Has("username") {
		v := form.Get("username")
		input.Username = &v
	}
	if form.Has("email") {
		v := form.Get("email")
		input.Email = &v
	}
	if form.Has("old_password") && form.Has("new_password") {
		oldPw, newPw := form.Get("old_password"), form.Get("new_password")
		input.OldPassword = &oldPw
		input.NewPassword = &newPw
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid image file"})
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid image file"})
		}
		input.Image = data
		input.ImageContentType = file.Header.Get("Content-Type")
	}

	if _, err := h.userService.Update(c.Request().Context(), callerID, role, targetID, input); err != nil {
		if len(input.Image) > 0 {
			metrics.ImageUploadsTotal.WithLabelValues("error").Inc()
		}
		return respondError(c, err)
	}

	if len(input.Image) > 0 {
		metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete hard-deletes the target record. Admin only; the target id is always
// explicit.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

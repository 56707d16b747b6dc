package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalops/user-admin-api/internal/core/domain"
	"github.com/portalops/user-admin-api/internal/core/ports"
)

// AdminHandler serves the admin-only user directory operations. All routes
// are mounted behind Authenticate and RequireAdmin.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"`
}

// ListUsers returns every directory record, newest first, passwords omitted.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"users":   users,
	})
}

// CreateUser inserts a new directory record. Role defaults to "user".
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	user, err := h.adminService.CreateUser(c.Request().Context(), req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, failure("Username or email already in use"))
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("User '%s' created successfully", user.Username),
		"user":    user,
	})
}

// DeleteUser removes a directory record and invalidates the deleted user's
// live sessions.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	deleted, err := h.adminService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, failure("User not found"))
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"message":     fmt.Sprintf("User '%s' deleted successfully", deleted.Username),
		"deletedUser": deleted,
	})
}

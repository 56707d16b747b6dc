package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portalops/user-admin-api/internal/api/middleware"
	"github.com/portalops/user-admin-api/internal/core/domain"
	"github.com/portalops/user-admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	Username  string `json:"username"`
}

// Login authenticates a user and establishes a session.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid payload"))
	}

	token, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, failure("Invalid email or password."))
		}
		return err
	}

	// Cookie and response body carry the same token; clients may use either.
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Success:   true,
		Message:   fmt.Sprintf("Welcome, %s!", session.Username),
		SessionID: token,
		Role:      session.Role,
		Username:  session.Username,
	})
}

// Logout destroys the current session. It is idempotent and always reports
// success so client-side cleanup can proceed regardless of server state.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c.Request())
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		h.log.Error().Err(err).Msg("logout: session destroy failed")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CurrentUser returns the session resolved by the Authenticate middleware.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /api/user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, failure("Not authenticated"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    session,
	})
}

func failure(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}

package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/portalops/user-admin-api/internal/api/middleware"
	"github.com/portalops/user-admin-api/internal/core/ports"
)

// PageHandler serves the browser pages. Pages are gated the same way the API
// is, but failures redirect instead of returning JSON.
type PageHandler struct {
	sessions  ports.SessionStore
	staticDir string
}

func NewPageHandler(sessions ports.SessionStore, staticDir string) *PageHandler {
	return &PageHandler{sessions: sessions, staticDir: staticDir}
}

// Index serves the login page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.File(filepath.Join(h.staticDir, "index.html"))
}

// Dashboard serves the user dashboard; anonymous visitors go back to login.
func (h *PageHandler) Dashboard(c echo.Context) error {
	token := middleware.ExtractToken(c.Request())
	if _, err := h.sessions.Resolve(c.Request().Context(), token); err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.File(filepath.Join(h.staticDir, "dashboard.html"))
}

// Admin serves the admin console. Non-admin sessions land on the regular
// dashboard, anonymous visitors on the login page.
func (h *PageHandler) Admin(c echo.Context) error {
	token := middleware.ExtractToken(c.Request())
	session, err := h.sessions.Resolve(c.Request().Context(), token)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	if !session.IsAdmin() {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.File(filepath.Join(h.staticDir, "admin.html"))
}

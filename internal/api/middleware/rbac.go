package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

// RequireAdmin rejects sessions whose role is not admin. It assumes
// Authenticate already ran; a missing session is treated as unauthenticated,
// not forbidden, so the two failure modes stay distinct.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil {
				return unauthenticated(c)
			}
			if !session.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"message": "Admin access required",
				})
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the session injected by Authenticate, or nil.
func SessionFromContext(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionKey).(*domain.Session)
	return session
}

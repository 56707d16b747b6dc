package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portalops/user-admin-api/internal/core/ports"
)

// SessionCookie is the cookie field carrying the session token.
const SessionCookie = "sessionId"

// sessionKey is the echo context key under which Authenticate stores the
// resolved session.
const sessionKey = "session"

// ExtractToken pulls the session token from the request. Precedence is fixed:
// the Authorization header wins over the cookie. A "Bearer " prefix on the
// header is tolerated and stripped. An empty result is indistinguishable from
// an invalid token.
func ExtractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
			return strings.TrimSpace(auth[7:])
		}
		return strings.TrimSpace(auth)
	}

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate resolves the session token and injects the session into the
// echo context. The wrapped handler never runs when resolution fails.
func Authenticate(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request())
			if token == "" {
				return unauthenticated(c)
			}

			session, err := store.Resolve(c.Request().Context(), token)
			if err != nil {
				return unauthenticated(c)
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": "Not authenticated",
	})
}

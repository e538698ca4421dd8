package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// SessionReader exposes the single in-process session to the middleware.
type SessionReader interface {
	CurrentUser(ctx context.Context) *domain.User
}

// Session resolves the current session user and injects identity into the
// request context. There are no tokens: this is a single-user demo and the
// process itself holds the one authenticated session.
func Session(sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := sessions.CurrentUser(c.Request().Context())
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			c.Set("user_id", user.ID)
			c.Set("role", string(user.Role))

			return next(c)
		}
	}
}

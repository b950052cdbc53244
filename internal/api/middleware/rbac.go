package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/domain"
)

// RequireRole gates a route to the given roles. It runs after Auth and
// consults only the store-resolved identity, never token claims.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("identity").(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.Role.OneOf(allowed...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/api/metrics"
	"github.com/edusuite/school-system/internal/core/domain"
)

// IdentityResolver resolves a bearer token into the current user record.
// Resolution re-reads role and active flag from the store, so the token is
// proof of authentication only, never a cache of privileges.
type IdentityResolver interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it, and injects the resulting
// identity into the request context under the "identity" key.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues(resolutionResult(err)).Inc()
				return err
			}
			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()

			c.Set("identity", user)
			return next(c)
		}
	}
}

func resolutionResult(err error) string {
	if errors.Is(err, domain.ErrAccountInactive) {
		return "inactive"
	}
	return "invalid"
}

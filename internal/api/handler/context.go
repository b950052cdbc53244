package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusuite/school-system/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. Its
// absence means the route was wired without the middleware; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("identity").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

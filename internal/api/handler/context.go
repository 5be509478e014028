package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/api/middleware"
	"github.com/moviehub/accounts-api/internal/core/domain"
)

// currentUser extracts the account the Protect guard attached to the
// request. A miss means the route was mounted without the guard.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

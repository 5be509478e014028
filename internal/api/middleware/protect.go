package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/api/metrics"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

// UserContextKey is where Protect stores the resolved account for
// downstream handlers.
const UserContextKey = "currentUser"

// guardResponse mirrors the wire shape legacy clients expect: the failure
// message rides in the status field.
type guardResponse struct {
	Status string `json:"status"`
}

// Protect is the access guard applied to authenticated routes. It is a
// strict linear gate, terminal on first failure:
//
//  1. extract the bearer token from the Authorization header
//  2. verify signature and expiry
//  3. re-resolve the account the token references
//  4. reject tokens issued before the account's last password change
//  5. attach the account to the request context and continue
//
// The 404 codes for unauthenticated and stale-token failures are kept for
// compatibility with existing clients.
func Protect(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return c.JSON(http.StatusNotFound, guardResponse{
					Status: "You're not logged in! Please log in to gain access",
				})
			}
			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusForbidden, guardResponse{
					Status: "Invalid token",
				})
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("user_gone").Inc()
				return c.JSON(http.StatusNotFound, guardResponse{
					Status: "User does not exist",
				})
			}

			if user.ChangedPasswordAfter(claims.IssuedAt) {
				metrics.TokenRejectionsTotal.WithLabelValues("stale_token").Inc()
				return c.JSON(http.StatusNotFound, guardResponse{
					Status: "Password has been recently changed",
				})
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

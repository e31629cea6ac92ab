package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diksiai/pkg/models"
)

// ContextKey represents keys for context values
type ContextKey string

// UserContextKey is where RequireAuth stores the authenticated user.
const UserContextKey ContextKey = "user"

// RequireAuth validates the Bearer token and loads the user into the
// request context.
func RequireAuth(service *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header required")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			userID, err := service.Tokens().ValidateToken(tokenParts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			user, err := service.UserByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(string(UserContextKey), user)
			return next(c)
		}
	}
}

// RequireApproved rejects users that have not been approved by an
// administrator. Must run after RequireAuth.
func RequireApproved() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !user.IsApproved {
				return echo.NewHTTPError(http.StatusForbidden, "Your account is pending approval. Please contact an administrator.")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user from the request context,
// or nil when the request is unauthenticated.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(string(UserContextKey)).(*models.User)
	return user
}

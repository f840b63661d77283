package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/auth"
	"empoweryouth-api/pkg/models"
)

// UserIDKey is the echo context key carrying the authenticated user id.
const UserIDKey = "user_id"

// RequireAuth gates a route on a valid bearer token. It rejects before
// the handler runs, so unauthenticated attempts cause no store access.
func RequireAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "Authentication required",
				})
			}

			userID, err := tokens.Validate(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "Invalid token",
				})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c echo.Context) string {
	if id, ok := c.Get(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

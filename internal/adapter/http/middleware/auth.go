package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-backend/internal/domain"
	"github.com/flight-booking/flight-booking-backend/internal/usecase"
)

// Context keys for the authenticated identity.
const (
	userIDKey   = "auth_user_id"
	userRoleKey = "auth_user_role"
)

// Authenticate returns middleware that requires a valid bearer token. The
// verified identity is stored on the context for handlers.
func Authenticate(auth usecase.AuthUseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return unauthorized(c, "Missing bearer token")
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(userRoleKey, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin returns middleware that rejects non-admin identities. It must
// run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetUserRole(c) != domain.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"success": false,
					"error": map[string]string{
						"code":    "forbidden",
						"message": "Admin access required",
					},
				})
			}
			return next(c)
		}
	}
}

// GetUserID retrieves the authenticated user ID from the echo context.
func GetUserID(c echo.Context) string {
	if id, ok := c.Get(userIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserRole retrieves the authenticated user role from the echo context.
func GetUserRole(c echo.Context) domain.UserRole {
	if role, ok := c.Get(userRoleKey).(domain.UserRole); ok {
		return role
	}
	return ""
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    "unauthorized",
			"message": message,
		},
	})
}

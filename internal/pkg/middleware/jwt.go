package middleware

import (
	"strings"

	"github.com/krypton4149/washnow/internal/pkg/jwt"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. Validated
// claims are stored on the echo context as session_id, user_id and role.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			sessionID, ok := (*claims)["session_id"].(string)
			if !ok || sessionID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing session_id claim")
			}

			userID, _ := (*claims)["user_id"].(string)
			role, _ := (*claims)["role"].(string)

			c.Set("session_id", sessionID)
			c.Set("user_id", userID)
			c.Set("role", role)

			return next(c)
		}
	}
}

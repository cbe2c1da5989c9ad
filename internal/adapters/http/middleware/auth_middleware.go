package middleware

import (
	"strings"

	"studyspace-booking/internal/config"
	"studyspace-booking/internal/pkg/jwt"
	"studyspace-booking/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware gates protected routes behind a bearer session token
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Unauthorized(c, "Token missing")
		}

		claims, err := jwt.Validate(token, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Token invalid")
		}

		// Current handlers gate on the token only; the identity is kept
		// around for request logs and future authorization checks.
		c.Locals("username", claims.Username)

		return c.Next()
	}
}

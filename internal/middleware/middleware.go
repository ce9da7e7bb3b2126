package middleware

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/api/presenters"
	"Food-Expiry-Tracker/internal/utils"
	"Food-Expiry-Tracker/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origin := utils.GetConfig("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	})
}

// AuthMiddleware looks for the session token in the cookie first, then in the
// Authorization header (bearer style). Missing or invalid tokens are both
// rejected with 401; 403 is reserved for ownership checks downstream.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			parts := strings.Fields(c.Get("Authorization"))
			if len(parts) == 2 {
				token = parts[1]
			}
		}
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		email, err := jwtService.GetUserEmailByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_email", email)
		return c.Next()
	}
}

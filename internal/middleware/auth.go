package middleware

import (
	"strings"

	"vault-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

const principalKey = "principal"

// Protected resolves the bearer token once per request and stores the
// principal in the request locals. Handlers behind it never see raw tokens.
func Protected(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			response := httpx.Unauthorized("Missing bearer token")
			return httpx.SendResponse(c, response)
		}

		principal, err := auth.ResolvePrincipal(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response := httpx.Unauthorized("Invalid or expired token")
			return httpx.SendResponse(c, response)
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// Principal returns the identity resolved by Protected
func Principal(c *fiber.Ctx) *services.Principal {
	principal, _ := c.Locals(principalKey).(*services.Principal)
	return principal
}

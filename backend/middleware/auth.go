package middleware

import (
	"github.com/gofiber/fiber/v2"

	"studytrack/backend/config"
	"studytrack/backend/utils"
)

// IdentityKey is the locals key under which AuthMiddleware stores the
// token's identity email.
const IdentityKey = "identityEmail"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractIdentityEmail(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(IdentityKey, email)
		return c.Next()
	}
}

package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles guards a group so only the given roles may pass.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
	}
}

package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetActorID returns the acting user's ID for audit purposes. The auth
// middleware puts it into Locals; mutating endpoints may also carry an
// explicit actor_id in the body, which wins when present.
func GetActorID(c *fiber.Ctx, bodyActorID *uuid.UUID) (uuid.UUID, error) {
	if bodyActorID != nil && *bodyActorID != uuid.Nil {
		return *bodyActorID, nil
	}
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing actor identity")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid actor identity")
	}
	return id, nil
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studytrack/backend/middleware"
	"studytrack/backend/models"
	"studytrack/backend/session"
	"studytrack/backend/utils"
)

// boundIdentity checks that the token's identity is the one the session
// binder currently holds. A valid token for a learner who has since
// logged out or been switched away gets rejected here, never a view of
// someone else's progress.
func boundIdentity(c *fiber.Ctx, binder *session.Binder) (models.Identity, error) {
	email, _ := c.Locals(middleware.IdentityKey).(string)

	current := binder.Current()
	if current == nil {
		return models.Identity{}, utils.Unauthorized(c, "No active session")
	}
	if current.ID != email {
		return models.Identity{}, utils.Conflict(c, "Session is bound to another identity")
	}
	return *current, nil
}

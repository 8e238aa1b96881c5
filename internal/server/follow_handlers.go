package server

import (
	"textbox/internal/middleware"
	"textbox/internal/models"
	"textbox/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow follows or unfollows the target user for the viewer
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	following, err := s.followRepo.Toggle(c.UserContext(), userID, targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	action := "unfollowed"
	if following {
		action = "followed"
	}
	observability.FollowToggles.WithLabelValues(action).Inc()

	middleware.Logger.InfoContext(c.UserContext(), "follow toggled",
		"user_id", userID, "target_id", targetID, "following", following)

	return c.JSON(fiber.Map{
		"following": following,
	})
}

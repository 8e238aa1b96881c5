package server

import (
	"textbox/internal/middleware"
	"textbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Content string `json:"content"`
}

// GetPosts returns the recent public feed
func (s *Server) GetPosts(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	views, err := s.feedService.RecentFeed(c.UserContext(), viewerID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(views)
}

// GetFollowingPosts returns recent posts authored by users the viewer follows
func (s *Server) GetFollowingPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	views, err := s.feedService.FollowingFeed(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(views)
}

// GetTrending returns the most-liked recent posts
func (s *Server) GetTrending(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	views, err := s.feedService.TrendingFeed(c.UserContext(), viewerID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(views)
}

// CreatePost handles new post creation
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), userID, req.Content)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created",
		"post_id", post.ID, "user_id", userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post added",
	})
}

// LikePost toggles the viewer's like on a post
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	likes, liked, err := s.postService.ToggleLike(c.UserContext(), userID, postID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"likes": likes,
		"liked": liked,
	})
}

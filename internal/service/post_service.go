package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"textbox/internal/cache"
	"textbox/internal/contentfilter"
	"textbox/internal/models"
	"textbox/internal/observability"
	"textbox/internal/repository"
)

const maxContentLen = 280

// PostService orchestrates post submission and like toggling.
type PostService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	filter   *contentfilter.Filter
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, filter *contentfilter.Filter) *PostService {
	return &PostService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		filter:   filter,
	}
}

// CreatePost runs the content filter and stores the post attributed to the
// given author. Content that is empty after filtering and trimming is
// rejected.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content string) (*models.Post, error) {
	cleaned := strings.TrimSpace(s.filter.Clean(strings.TrimSpace(content)))
	if cleaned == "" {
		return nil, models.NewValidationError("Empty post")
	}
	// The limit counts characters, not bytes; multi-byte content must not
	// be penalized.
	if utf8.RuneCountInString(cleaned) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 280 characters)")
	}

	post := &models.Post{
		Content: cleaned,
		UserID:  &userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	// A fresh post can alter the trending window when fewer than
	// trendingLimit posts carry likes.
	cache.InvalidateTrending(ctx)
	return post, nil
}

// ToggleLike flips the viewer's like on a post and returns the resulting
// counter and membership state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (int, bool, error) {
	likes, liked, err := s.likeRepo.Toggle(ctx, userID, postID)
	if err != nil {
		return 0, false, err
	}

	action := "unliked"
	if liked {
		action = "liked"
	}
	observability.LikeToggles.WithLabelValues(action).Inc()
	cache.InvalidateTrending(ctx)
	return likes, liked, nil
}

package service

import (
	"context"
	"time"

	"textbox/internal/cache"
	"textbox/internal/models"
	"textbox/internal/observability"
	"textbox/internal/repository"
)

// AnonAuthor is the author name used for posts without an owning user.
const AnonAuthor = "anon"

// FeedService is the feed composer: it combines the post store, the like
// index, and the social graph with the viewer's identity to produce
// viewer-relative post views. Like membership for a feed page is fetched
// in one batch query; author and follow lookups are indexed point reads,
// with the user lookup going through the cache-aside path.
type FeedService struct {
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	likeRepo      repository.LikeRepository
	followRepo    repository.FollowRepository
	window        time.Duration
	trendingLimit int
}

// NewFeedService returns a new FeedService with the given rolling window
// and trending result cap.
func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	followRepo repository.FollowRepository,
	window time.Duration,
	trendingLimit int,
) *FeedService {
	return &FeedService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		likeRepo:      likeRepo,
		followRepo:    followRepo,
		window:        window,
		trendingLimit: trendingLimit,
	}
}

// Serialize produces the viewer-relative view of a single post. A viewerID
// of 0 means anonymous: both viewer flags stay false.
func (s *FeedService) Serialize(ctx context.Context, post *models.Post, viewerID uint) (models.PostView, error) {
	liked := false
	if viewerID != 0 {
		var err error
		liked, err = s.likeRepo.IsLiked(ctx, viewerID, post.ID)
		if err != nil {
			return models.PostView{}, err
		}
	}
	return s.serialize(ctx, post, viewerID, liked)
}

func (s *FeedService) serialize(ctx context.Context, post *models.Post, viewerID uint, liked bool) (models.PostView, error) {
	view := models.PostView{
		ID:        post.ID,
		Content:   post.Content,
		Likes:     post.Likes,
		Timestamp: post.CreatedAt.UTC().Format(time.RFC3339),
		Author:    AnonAuthor,
		AuthorID:  post.UserID,
		UserLiked: liked,
	}

	if post.UserID != nil {
		author, err := s.userRepo.GetByID(ctx, *post.UserID)
		if err != nil {
			return models.PostView{}, err
		}
		view.Author = author.Username

		if viewerID != 0 {
			following, err := s.followRepo.IsFollowing(ctx, viewerID, *post.UserID)
			if err != nil {
				return models.PostView{}, err
			}
			view.UserFollowing = following
		}
	}

	return view, nil
}

// likedSet batches the viewer's like membership for a page of posts into a
// single IN query instead of one point read per post.
func (s *FeedService) likedSet(ctx context.Context, posts []*models.Post, viewerID uint) (map[uint]bool, error) {
	if viewerID == 0 || len(posts) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	likedIDs, err := s.likeRepo.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		set[id] = true
	}
	return set, nil
}

func (s *FeedService) serializeAll(ctx context.Context, posts []*models.Post, viewerID uint) ([]models.PostView, error) {
	liked, err := s.likedSet(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.serialize(ctx, post, viewerID, liked[post.ID])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// RecentFeed returns all posts within the rolling window, newest first.
func (s *FeedService) RecentFeed(ctx context.Context, viewerID uint) ([]models.PostView, error) {
	posts, err := s.postRepo.Recent(ctx, s.window)
	if err != nil {
		return nil, err
	}
	views, err := s.serializeAll(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}
	observability.FeedPosts.WithLabelValues("recent").Observe(float64(len(views)))
	return views, nil
}

// FollowingFeed returns in-window posts authored by users the viewer
// follows, newest first.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint) ([]models.PostView, error) {
	authorIDs, err := s.followRepo.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.RecentByAuthors(ctx, authorIDs, s.window)
	if err != nil {
		return nil, err
	}
	views, err := s.serializeAll(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}
	observability.FeedPosts.WithLabelValues("following").Observe(float64(len(views)))
	return views, nil
}

// TrendingFeed returns the in-window posts with the most likes, capped at
// the trending limit. Ties are newest-first. The anonymous rendering is
// cached briefly; viewer-relative renderings always hit the store because
// the flags differ per viewer.
func (s *FeedService) TrendingFeed(ctx context.Context, viewerID uint) ([]models.PostView, error) {
	fetch := func(dest *[]models.PostView) error {
		posts, err := s.postRepo.TopByLikes(ctx, s.window, s.trendingLimit)
		if err != nil {
			return err
		}
		views, err := s.serializeAll(ctx, posts, viewerID)
		if err != nil {
			return err
		}
		*dest = views
		return nil
	}

	var views []models.PostView
	if viewerID == 0 {
		err := cache.Aside(ctx, cache.TrendingKey, &views, cache.TrendingTTL, func() error {
			return fetch(&views)
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := fetch(&views); err != nil {
			return nil, err
		}
	}

	observability.FeedPosts.WithLabelValues("trending").Observe(float64(len(views)))
	return views, nil
}

// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"textbox/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Every read
// applies the rolling time window: posts older than the lookback never
// surface in a feed.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Recent(ctx context.Context, window time.Duration) ([]*models.Post, error)
	RecentByAuthors(ctx context.Context, authorIDs []uint, window time.Duration) ([]*models.Post, error)
	TopByLikes(ctx context.Context, window time.Duration, limit int) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// cutoff returns the lower bound of the rolling window, relative to query time.
func cutoff(window time.Duration) time.Time {
	return time.Now().UTC().Add(-window)
}

func (r *postRepository) Recent(ctx context.Context, window time.Duration) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Where("created_at > ?", cutoff(window)).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) RecentByAuthors(ctx context.Context, authorIDs []uint, window time.Duration) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Where("user_id IN ? AND created_at > ?", authorIDs, cutoff(window)).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// TopByLikes orders by the denormalized like counter. Ties are broken
// newest-first so the ordering is deterministic across storage engines.
func (r *postRepository) TopByLikes(ctx context.Context, window time.Duration, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Where("created_at > ?", cutoff(window)).
		Order("likes DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

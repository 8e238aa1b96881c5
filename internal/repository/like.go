// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"textbox/internal/models"

	"gorm.io/gorm"
)

// LikeRepository maintains (user, post) like membership together with the
// denormalized per-post like counter. The two are only ever mutated inside
// the same transaction, so they cannot disagree after a toggle commits.
type LikeRepository interface {
	Toggle(ctx context.Context, userID, postID uint) (likes int, liked bool, err error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle inserts a like if absent, deletes it if present, and adjusts the
// post's counter in the same transaction. The existence check, the row
// mutation, and the counter update run under the storage engine's
// transactional isolation, so concurrent toggles on the same post serialize
// there rather than racing in application code.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (int, bool, error) {
	var likes int
	var liked bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", postID)
			}
			return models.NewInternalError(err)
		}

		var existing models.Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return models.NewInternalError(err)
			}
			// Floored in SQL so the counter never goes negative even if it
			// had drifted.
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				Update("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error; err != nil {
				return models.NewInternalError(err)
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return models.NewInternalError(err)
			}
			liked = true
		default:
			return models.NewInternalError(err)
		}

		// Re-read the counter inside the transaction for the response.
		if err := tx.Select("likes").First(&post, postID).Error; err != nil {
			return models.NewInternalError(err)
		}
		likes = post.Likes
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return likes, liked, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedPostIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedPostIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedPostIDs, nil
}

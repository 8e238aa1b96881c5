// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"textbox/internal/models"

	"gorm.io/gorm"
)

// FollowRepository maintains the directed follow edges of the social graph.
// The toggle has the same transactional shape as the like toggle, minus the
// counter.
type FollowRepository interface {
	Toggle(ctx context.Context, followerID, followedID uint) (following bool, err error)
	FollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followedID uint) (bool, error) {
	if followerID == followedID {
		return false, models.NewSelfFollowError()
	}

	var following bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return models.NewInternalError(err)
			}
			following = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Follow{FollowerID: followerID, FollowedID: followedID}).Error; err != nil {
				return models.NewInternalError(err)
			}
			following = true
		default:
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return following, nil
}

func (r *followRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// Follow is a directed edge in the social graph. At most one row per
// (follower, followed) pair; self-follows are rejected before insertion.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a short text message. UserID is nullable: posts created
// outside an authenticated session are attributed to "anon" when serialized.
// Likes is a denormalized counter kept in sync with the likes table inside
// the same transaction as every toggle.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:280;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// PostView is the viewer-relative serialization of a Post as returned by
// the feed endpoints. UserLiked and UserFollowing depend on who is asking,
// not just on the stored row.
type PostView struct {
	ID            uint   `json:"id"`
	Content       string `json:"content"`
	Likes         int    `json:"likes"`
	Timestamp     string `json:"timestamp"`
	Author        string `json:"author"`
	AuthorID      *uint  `json:"author_id"`
	UserLiked     bool   `json:"user_liked"`
	UserFollowing bool   `json:"user_following"`
}

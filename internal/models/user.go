// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Users are never deleted, so no
// soft-delete column is carried.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

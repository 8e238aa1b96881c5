package seed

import (
	"fmt"
	"math/rand"

	"textbox/internal/middleware"
	"textbox/internal/models"

	"gorm.io/gorm"
)

// Options controls the shape of a seed run.
type Options struct {
	Users        int
	PostsPerUser int
	// MaxHoursBack spreads post timestamps over this many hours so both
	// the recent window and older content are represented.
	MaxHoursBack int
	// LikeRatio is the chance [0,1) that a given user likes a given post.
	LikeRatio float64
	// FollowRatio is the chance [0,1) that a given user follows another.
	FollowRatio float64
	// RandSeed fixes the RNG for reproducible runs; 0 means time-based.
	RandSeed int64
}

// DefaultOptions returns a small demo dataset suitable for local
// development.
func DefaultOptions() Options {
	return Options{
		Users:        10,
		PostsPerUser: 8,
		MaxHoursBack: 48,
		LikeRatio:    0.2,
		FollowRatio:  0.3,
	}
}

// Run populates the database with fake users, posts, likes, and follows.
// It refuses to run on a database that already has users.
func Run(db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("database already has %d users, refusing to seed", count)
	}

	factory := NewFactory(db, opts)
	rng := rand.New(rand.NewSource(opts.RandSeed + 1))

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := factory.CreatePost(user)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	likes := 0
	for _, user := range users {
		for _, post := range posts {
			if post.UserID != nil && *post.UserID == user.ID {
				continue
			}
			if rng.Float64() < opts.LikeRatio {
				if err := factory.CreateLike(user, post); err != nil {
					return err
				}
				likes++
			}
		}
	}

	follows := 0
	for _, follower := range users {
		for _, followed := range users {
			if follower.ID == followed.ID {
				continue
			}
			if rng.Float64() < opts.FollowRatio {
				if err := factory.CreateFollow(follower, followed); err != nil {
					return err
				}
				follows++
			}
		}
	}

	middleware.Logger.Info("seed complete",
		"users", len(users), "posts", len(posts),
		"likes", likes, "follows", follows)
	return nil
}

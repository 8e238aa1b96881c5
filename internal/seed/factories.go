// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"textbox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seedVal := opts.RandSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gofakeit.Seed(seedVal)
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(seedVal)),
		opts: opts,
	}
}

// CreateUser persists a user with a bcrypt-hashed password. The password
// for all seeded users is "password" unless overridden.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     f.uniqueUsername(),
		PasswordHash: string(hash),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

func (f *Factory) uniqueUsername() string {
	base := strings.ToLower(gofakeit.Username())
	if len(base) > 40 {
		base = base[:40]
	}
	return fmt.Sprintf("%s%d", base, f.rng.Intn(10000))
}

// BuildPost constructs a post without persisting it. CreatedAt is spread
// over the configured window so feeds have both fresh and stale content.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Content: f.shortContent(),
		UserID:  &user.ID,
	}

	maxHours := f.opts.MaxHoursBack
	if maxHours <= 0 {
		maxHours = 48
	}
	minsBack := f.rng.Intn(maxHours * 60)
	post.CreatedAt = time.Now().UTC().Add(-time.Duration(minsBack) * time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost persists a post built by BuildPost.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}
	return post, nil
}

// shortContent produces content that always fits the 280-char limit.
func (f *Factory) shortContent() string {
	content := gofakeit.Sentence(6 + f.rng.Intn(15))
	if len(content) > 280 {
		content = content[:280]
	}
	return content
}

// CreateLike records a like and bumps the denormalized counter so seeded
// data matches what the toggle path would have produced.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		like := &models.Like{UserID: user.ID, PostID: post.ID}
		if err := tx.Create(like).Error; err != nil {
			return fmt.Errorf("seed like: %w", err)
		}
		return tx.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

// CreateFollow records a follower relationship. Self-follows are skipped.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	if follower.ID == followed.ID {
		return nil
	}
	follow := &models.Follow{FollowerID: follower.ID, FollowedID: followed.ID}
	if err := f.db.Create(follow).Error; err != nil {
		return fmt.Errorf("seed follow: %w", err)
	}
	return nil
}

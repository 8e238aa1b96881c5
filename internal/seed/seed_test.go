package seed

import (
	"testing"

	"textbox/internal/database"
	"textbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRun_PopulatesDatabase(t *testing.T) {
	db := setupSeedDB(t)

	opts := Options{
		Users:        5,
		PostsPerUser: 3,
		MaxHoursBack: 48,
		LikeRatio:    0.5,
		FollowRatio:  0.5,
		RandSeed:     42,
	}
	require.NoError(t, Run(db, opts))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 15, postCount)
}

func TestRun_RefusesNonEmptyDatabase(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, db.Create(&models.User{
		Username:     "existing",
		PasswordHash: "x",
	}).Error)

	err := Run(db, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to seed")
}

func TestFactory_LikeCounterMatchesRows(t *testing.T) {
	db := setupSeedDB(t)
	factory := NewFactory(db, Options{RandSeed: 7})

	author, err := factory.CreateUser()
	require.NoError(t, err)
	fan, err := factory.CreateUser()
	require.NoError(t, err)

	post, err := factory.CreatePost(author)
	require.NoError(t, err)
	require.NoError(t, factory.CreateLike(fan, post))

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, 1, got.Likes)

	var likeRows int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows).Error)
	assert.EqualValues(t, 1, likeRows)
}

func TestFactory_SkipsSelfFollow(t *testing.T) {
	db := setupSeedDB(t)
	factory := NewFactory(db, Options{RandSeed: 7})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	require.NoError(t, factory.CreateFollow(user, user))

	var followRows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&followRows).Error)
	assert.EqualValues(t, 0, followRows)
}

func TestFactory_PostContentFitsLimit(t *testing.T) {
	db := setupSeedDB(t)
	factory := NewFactory(db, Options{RandSeed: 7})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		post := factory.BuildPost(user)
		assert.LessOrEqual(t, len(post.Content), 280)
		assert.NotEmpty(t, post.Content)
	}
}

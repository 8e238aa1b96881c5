package bootstrap

import (
	"testing"

	"textbox/internal/config"
	"textbox/internal/database"
	"textbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBootstrapDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestEnsureDevUser(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:              "development",
		DevBootstrapUser: true,
		DevUsername:      "demo",
		DevUserPassword:  "local-only",
	}

	require.NoError(t, ensureDevUser(cfg, db))

	var user models.User
	require.NoError(t, db.Where("username = ?", "demo").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("local-only")))

	// idempotent on a populated database
	require.NoError(t, ensureDevUser(cfg, db))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureDevUser_SkippedOutsideDevelopment(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:              "production",
		DevBootstrapUser: true,
		DevUserPassword:  "x",
	}

	require.NoError(t, ensureDevUser(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEnsureDevUser_RequiresPassword(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:              "development",
		DevBootstrapUser: true,
	}

	assert.Error(t, ensureDevUser(cfg, db))
}

// Package bootstrap wires the runtime dependencies (database, Redis) and
// applies development-only conveniences before the server starts.
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"textbox/internal/cache"
	"textbox/internal/config"
	"textbox/internal/database"
	"textbox/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis. Redis failures are not
// fatal; the returned client is nil and dependent features degrade.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevUser(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development user: %w", err)
	}

	return db, r, nil
}

// ensureDevUser creates a known local account in development so the API is
// usable immediately after a fresh database. No-op elsewhere.
func ensureDevUser(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapUser {
		return nil
	}

	username := strings.TrimSpace(cfg.DevUsername)
	if username == "" {
		username = "demo"
	}
	password := cfg.DevUserPassword
	if password == "" {
		return fmt.Errorf("DEV_USER_PASSWORD must be set when DEV_BOOTSTRAP_USER is enabled")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash dev password: %w", err)
	}

	var existing models.User
	findErr := db.Where("username = ?", username).First(&existing).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		return db.Create(&models.User{
			Username:     username,
			PasswordHash: string(hash),
		}).Error
	case findErr != nil:
		return findErr
	}
	return nil
}

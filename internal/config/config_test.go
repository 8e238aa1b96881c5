package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBase() *Config {
	return &Config{
		Port:            "8370",
		JWTSecret:       "secure-secret-at-least-32-chars-long",
		DBHost:          "localhost",
		DBPassword:      "secure-password",
		DBSSLMode:       "require",
		FeedWindowHours: 24,
		TrendingLimit:   10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) { c.Env = "development" }, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero feed window", func(c *Config) { c.FeedWindowHours = 0 }, true},
		{"Zero trending limit", func(c *Config) { c.TrendingLimit = 0 }, true},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "dev_secret-change-in-production"
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production without DB host", func(c *Config) {
			c.Env = "production"
			c.DBHost = ""
		}, true},
		{"Production with default DB password", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = "password"
		}, true},
		{"Production with dev bootstrap user", func(c *Config) {
			c.Env = "production"
			c.DevBootstrapUser = true
		}, true},
		{"Valid production config", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validBase()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Package validation contains input validation rules for user-supplied fields.
package validation

import (
	"fmt"
	"strings"
)

const maxUsernameLen = 50

// ValidateUsername checks a username against the storage constraints.
// Uniqueness is case-sensitive and enforced at the database layer, not here.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", maxUsernameLen)
	}
	return nil
}

// ValidatePassword checks that a password is present. Strength rules are
// intentionally not enforced.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

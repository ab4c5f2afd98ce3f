// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// usernamePattern restricts usernames to alphanumerics, underscore and hyphen.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// User is the account that owns tasks and tags. Its username is unique
// across the system; uniqueness is ultimately enforced by the storage layer
// so that concurrent registrations cannot both succeed.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The login identifier. Case-sensitive, charset-restricted.
	PasswordHash string    // The salted bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// ValidUsername reports whether name is non-empty and uses only the
// allowed characters.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to and from pure domain entities inside the
// repositories; nothing outside the persistence layer sees them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps to the users table. The unique index on username is the
// serialization point for concurrent registrations.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"column:username;uniqueIndex:idx_users_username;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

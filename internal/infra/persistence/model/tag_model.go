package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel maps to the tags table. The composite unique index on
// (user_id, name) backs tag reconciliation: concurrent find-or-create calls
// for the same name serialize on it, and the loser re-reads the winner's row.
type TagModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_tags_user_id_name;not null"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex:idx_tags_user_id_name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for TagModel.
func (TagModel) TableName() string {
	return "tags"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel maps to the tasks table. Tags are attached through the taggings
// join table; join rows are removed by the database cascade when either side
// is deleted, never written directly by clients.
type TaskModel struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string      `gorm:"column:title;not null"`
	UserID    uuid.UUID   `gorm:"column:user_id;type:uuid;index;not null"`
	Tags      []*TagModel `gorm:"many2many:taggings;joinForeignKey:task_id;joinReferences:tag_id"`
	CreatedAt time.Time   `gorm:"column:created_at"`
	UpdatedAt time.Time   `gorm:"column:updated_at"`
}

// TableName specifies the table name for TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is an owned entity. The owner is fixed at creation time from the
// authenticated principal and is never reassigned by an update.
type Task struct {
	ID        uuid.UUID // The unique identifier for the task.
	Title     string    // Required, non-empty.
	UserID    uuid.UUID // Owner reference.
	Tags      []*Tag    // Tags currently attached to the task, in creation order.
	CreatedAt time.Time
	UpdatedAt time.Time
}

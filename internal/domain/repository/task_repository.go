package repository

import (
	"context"
	"errors"

	"tasktag/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByID retrieves a single task, with its attached tags, by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByOwner retrieves every task owned by the given user. There is no
	// unscoped listing: callers can only ever see one owner's tasks.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// UpdateTitle changes the title of an existing task.
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error

	// Delete removes a task. Join rows to tags are removed by cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceTags swaps the task's full tag association for the given set.
	// Tags not in tagIDs are detached; it is a set operation, not additive.
	ReplaceTags(ctx context.Context, taskID uuid.UUID, tagIDs []uuid.UUID) error
}

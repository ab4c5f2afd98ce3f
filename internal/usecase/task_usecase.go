package usecase

import (
	"context"

	"tasktag/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task. TagNames, when
// present, is reconciled into tag relationships owned by the caller.
type CreateTaskInput struct {
	Title    string
	TagNames []string
}

// UpdateTaskInput defines a partial task update. Nil fields are left
// untouched. A nil TagNames means the tags attribute was not supplied; an
// empty non-nil slice detaches every tag (set-replacement semantics).
type UpdateTaskInput struct {
	Title    *string
	TagNames []string
	// TagNamesPresent distinguishes "tags field absent" from "tags: []".
	TagNamesPresent bool
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation is scoped to the authenticated principal: single-record
// operations verify ownership before acting, and listing only ever returns
// the principal's own records.
type TaskUsecase interface {
	// ListTasks returns the principal's tasks. Client-supplied owner filters
	// are never consulted; the scope is forced server-side.
	ListTasks(ctx context.Context, principal entity.Principal) ([]*entity.Task, error)

	// GetTask loads one task after verifying the principal owns it.
	GetTask(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Task, error)

	// CreateTask creates a task owned by the principal.
	CreateTask(ctx context.Context, principal entity.Principal, input *CreateTaskInput) (*entity.Task, error)

	// UpdateTask applies a partial update after verifying ownership. When
	// tag names are supplied they are reconciled and the task's tag set is
	// replaced atomically with the rest of the update.
	UpdateTask(ctx context.Context, principal entity.Principal, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// DeleteTask removes a task after verifying ownership.
	DeleteTask(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo  repository.TaskRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo  repository.TaskRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  params.TaskRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns the principal's tasks with their tags. The owner scope
// is injected server-side from the principal; whatever filter the client
// sent has already been discarded by the handler.
func (srv *taskService) ListTasks(ctx context.Context, principal entity.Principal) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// GetTask loads one task after verifying the principal owns it.
func (srv *taskService) GetTask(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Task, error) {
	return srv.loadOwnedTask(ctx, srv.taskRepo, principal, id)
}

// CreateTask creates a task owned by the principal and attaches its tags.
// The tag names are reconciled find-or-create within the same transaction
// as the task insert, so a failure on either side leaves nothing behind.
func (srv *taskService) CreateTask(ctx context.Context, principal entity.Principal, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetail("Title can't be blank")
	}

	task := &entity.Task{
		Title:  input.Title,
		UserID: principal.UserID,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		taskRepo := factory.TaskRepo()
		if err := taskRepo.Create(ctx, task); err != nil {
			return errors.Wrap(err, "failed to create task")
		}

		tags, err := reconcileTagNames(ctx, factory.TagRepo(), principal, input.TagNames)
		if err != nil {
			return err
		}

		if err := taskRepo.ReplaceTags(ctx, task.ID, tagIDs(tags)); err != nil {
			return errors.Wrap(err, "failed to attach tags")
		}

		task.Tags = tags

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Created task", slog.Any("taskID", task.ID), slog.Any("userID", principal.UserID))

	return task, nil
}

// UpdateTask applies a partial update after verifying ownership. When the
// request carried a tags field, the task's tag set is replaced wholesale
// with the reconciled names; an absent field leaves the tags untouched,
// while an explicit empty list detaches everything.
func (srv *taskService) UpdateTask(ctx context.Context, principal entity.Principal, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		taskRepo := factory.TaskRepo()

		task, err := srv.loadOwnedTask(ctx, taskRepo, principal, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			if strings.TrimSpace(*input.Title) == "" {
				return domainerrors.ErrValidationFailed.WithDetail("Title can't be blank")
			}

			if err := taskRepo.UpdateTitle(ctx, id, *input.Title); err != nil {
				return errors.Wrap(err, "failed to update task")
			}

			task.Title = *input.Title
		}

		if input.TagNamesPresent {
			tags, err := reconcileTagNames(ctx, factory.TagRepo(), principal, input.TagNames)
			if err != nil {
				return err
			}

			if err := taskRepo.ReplaceTags(ctx, id, tagIDs(tags)); err != nil {
				return errors.Wrap(err, "failed to replace tags")
			}

			task.Tags = tags
		}

		updated = task

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTask removes a task after verifying ownership. Join rows to tags go
// with it via the storage cascade; the tags themselves survive.
func (srv *taskService) DeleteTask(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if _, err := srv.loadOwnedTask(ctx, srv.taskRepo, principal, id); err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}

// loadOwnedTask loads a task and verifies ownership. The check runs on the
// loaded row before anything about it is returned, so a mismatch leaks
// nothing and mutates nothing.
func (srv *taskService) loadOwnedTask(ctx context.Context, taskRepo repository.TaskRepository, principal entity.Principal, id uuid.UUID) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WithDetail(fmt.Sprintf("Couldn't find Task with 'id'=%s", id))
		}

		return nil, errors.Wrap(err, "failed to load task")
	}

	if task.UserID != principal.UserID {
		srv.log(ctx).Warn("Task ownership mismatch", slog.Any("taskID", id), slog.Any("userID", principal.UserID))

		return nil, domainerrors.ErrForbidden
	}

	return task, nil
}

func tagIDs(tags []*entity.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}

	return ids
}

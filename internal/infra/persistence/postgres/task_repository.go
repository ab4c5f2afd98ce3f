package postgres

import (
	"context"

	"tasktag/internal/domain/entity"
	"tasktag/internal/domain/repository"
	"tasktag/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a single task, with its attached tags, by ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.created_at")
		}).
		Where("id = ?", id).
		First(&taskM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner retrieves every task owned by the given user, oldest first.
// UUID keys don't sort by insertion order, so created_at is the sort column.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	err := repo.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.created_at")
		}).
		Where("user_id = ?", ownerID).
		Order("created_at").
		Find(&taskModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Create persists a new task entity. Tag associations are managed separately
// through ReplaceTags.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Omit("Tags").Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required task information")
		}

		return errors.Wrap(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// UpdateTitle changes the title of an existing task.
func (repo *taskRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Update("title", title)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task title")
	}

	// If no rows were affected, the task was not found.
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by ID. Taggings are removed by the database cascade.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// ReplaceTags swaps the task's full tag association for the given set.
func (repo *taskRepository) ReplaceTags(ctx context.Context, taskID uuid.UUID, tagIDs []uuid.UUID) error {
	tagModels := make([]*model.TagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tagModels = append(tagModels, &model.TagModel{ID: tagID})
	}

	err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{ID: taskID}).
		Association("Tags").
		Replace(tagModels)

	if err != nil {
		return errors.Wrap(err, "failed to replace task tags")
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	tags := make([]*entity.Tag, 0, len(data.Tags))
	for _, tagM := range data.Tags {
		tags = append(tags, toTagDomain(tagM))
	}

	return &entity.Task{
		ID:        data.ID,
		Title:     data.Title,
		UserID:    data.UserID,
		Tags:      tags,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:     data.ID,
		Title:  data.Title,
		UserID: data.UserID,
	}
}

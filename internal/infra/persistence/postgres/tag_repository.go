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

// tagRepository implements the repository.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// FindByID retrieves a single tag by ID.
func (repo *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tagM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by id")
	}

	return toTagDomain(&tagM), nil
}

// FindByNameAndOwner retrieves the tag with the exact name owned by the given user.
func (repo *tagRepository) FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, ownerID).
		First(&tagM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name and owner")
	}

	return toTagDomain(&tagM), nil
}

// FindByNamesAndOwner retrieves every tag owned by the given user whose name
// is in names.
func (repo *tagRepository) FindByNamesAndOwner(ctx context.Context, names []string, ownerID uuid.UUID) ([]*entity.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var tagModels []*model.TagModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND name IN ?", ownerID, names).
		Find(&tagModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find tags by names and owner")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// ListByOwner retrieves every tag owned by the given user, oldest first.
func (repo *tagRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at").
		Find(&tagModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags by owner")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// Create persists a new tag entity. A (user_id, name) collision is reported
// as repository.ErrTagAlreadyExists so reconciliation can re-fetch the row
// that won the race instead of failing.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := fromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTagAlreadyExists
		}

		return errors.Wrap(err, "failed to create tag")
	}

	tag.ID = tagM.ID
	tag.CreatedAt = tagM.CreatedAt
	tag.UpdatedAt = tagM.UpdatedAt

	return nil
}

// UpdateName changes the name of an existing tag.
func (repo *tagRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id = ?", id).
		Update("name", name)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrTagAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update tag name")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// Delete removes a tag by ID. Taggings are removed by the database cascade.
func (repo *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TagModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTagDomain converts a domain Tag entity to a GORM TagModel for persistence.
func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}

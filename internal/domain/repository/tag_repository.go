package repository

import (
	"context"
	"errors"

	"tasktag/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTagNotFound is a domain-specific error returned when a tag is not found.
var ErrTagNotFound = errors.New("tag not found")

// ErrTagAlreadyExists is returned by Create when the (user_id, name) unique
// constraint rejects the insert. During reconciliation this is an expected,
// recoverable race: the caller re-fetches the winning row instead of failing.
var ErrTagAlreadyExists = errors.New("tag already exists")

// TagRepository defines the standard operations for tag persistence.
type TagRepository interface {
	// FindByID retrieves a single tag by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// FindByNameAndOwner retrieves the tag with the exact name owned by the
	// given user.
	FindByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (*entity.Tag, error)

	// FindByNamesAndOwner retrieves every tag owned by the given user whose
	// name is in names. Missing names are simply absent from the result.
	FindByNamesAndOwner(ctx context.Context, names []string, ownerID uuid.UUID) ([]*entity.Tag, error)

	// ListByOwner retrieves every tag owned by the given user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error)

	// Create persists a new tag entity to the storage.
	Create(ctx context.Context, tag *entity.Tag) error

	// UpdateName changes the name of an existing tag.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes a tag. Join rows to tasks are removed by cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

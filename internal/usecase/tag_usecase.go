package usecase

import (
	"context"

	"tasktag/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTagInput defines the data required to create a tag directly.
type CreateTagInput struct {
	Name string
}

// UpdateTagInput defines a partial tag update.
type UpdateTagInput struct {
	Name *string
}

// TagRef is the relationship reference produced by reconciliation, in the
// order the names were requested.
type TagRef struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
}

// TagUsecase defines the interface for tag-related business operations.
type TagUsecase interface {
	// ListTags returns the principal's tags; the owner scope is forced
	// server-side.
	ListTags(ctx context.Context, principal entity.Principal) ([]*entity.Tag, error)

	// GetTag loads one tag after verifying the principal owns it.
	GetTag(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Tag, error)

	// CreateTag creates a tag owned by the principal. A duplicate
	// (name, owner) pair is a conflict here, unlike during reconciliation.
	CreateTag(ctx context.Context, principal entity.Principal, input *CreateTagInput) (*entity.Tag, error)

	// UpdateTag applies a partial update after verifying ownership.
	UpdateTag(ctx context.Context, principal entity.Principal, id uuid.UUID, input *UpdateTagInput) (*entity.Tag, error)

	// DeleteTag removes a tag after verifying ownership.
	DeleteTag(ctx context.Context, principal entity.Principal, id uuid.UUID) error

	// ReconcileNames resolves free-text tag names to existing-or-created
	// tags owned by the principal and returns them as relationship
	// references, preserving the order of first occurrence. Reconciling the
	// same names twice creates each tag at most once.
	ReconcileNames(ctx context.Context, principal entity.Principal, names []string) ([]TagRef, error)
}

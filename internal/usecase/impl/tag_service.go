package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tagService implements the TagUsecase interface.
type tagService struct {
	tagRepo repository.TagRepository
	logger  *slog.Logger
}

// TagServiceParams holds dependencies for tagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TagRepo repository.TagRepository
	Logger  *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		tagRepo: params.TagRepo,
		logger:  params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTags returns the principal's tags. The owner scope comes from the
// authenticated principal alone; there is no path for a client filter to
// widen it.
func (srv *tagService) ListTags(ctx context.Context, principal entity.Principal) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// GetTag loads one tag after verifying the principal owns it.
func (srv *tagService) GetTag(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Tag, error) {
	return srv.loadOwnedTag(ctx, srv.tagRepo, principal, id)
}

// CreateTag creates a tag owned by the principal. Outside reconciliation a
// duplicate (name, owner) pair is a client-visible conflict.
func (srv *tagService) CreateTag(ctx context.Context, principal entity.Principal, input *usecase.CreateTagInput) (*entity.Tag, error) {
	tag := &entity.Tag{
		Name:   input.Name,
		UserID: principal.UserID,
	}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrTagAlreadyExists) {
			return nil, domainerrors.ErrConflict.WithDetail("Tag already exists")
		}

		return nil, errors.Wrap(err, "failed to create tag")
	}

	srv.log(ctx).Debug("Created tag", slog.Any("tagID", tag.ID), slog.Any("userID", principal.UserID))

	return tag, nil
}

// UpdateTag applies a partial update after verifying ownership.
func (srv *tagService) UpdateTag(ctx context.Context, principal entity.Principal, id uuid.UUID, input *usecase.UpdateTagInput) (*entity.Tag, error) {
	tag, err := srv.loadOwnedTag(ctx, srv.tagRepo, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Name == nil {
		return tag, nil
	}

	if err := srv.tagRepo.UpdateName(ctx, id, *input.Name); err != nil {
		if errors.Is(err, repository.ErrTagAlreadyExists) {
			return nil, domainerrors.ErrConflict.WithDetail("Tag already exists")
		}

		return nil, errors.Wrap(err, "failed to update tag")
	}

	tag.Name = *input.Name

	return tag, nil
}

// DeleteTag removes a tag after verifying ownership. Join rows to tasks go
// with it via the storage cascade.
func (srv *tagService) DeleteTag(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if _, err := srv.loadOwnedTag(ctx, srv.tagRepo, principal, id); err != nil {
		return err
	}

	if err := srv.tagRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete tag")
	}

	return nil
}

// ReconcileNames resolves free-text tag names for the principal and returns
// relationship references in first-occurrence order.
func (srv *tagService) ReconcileNames(ctx context.Context, principal entity.Principal, names []string) ([]usecase.TagRef, error) {
	tags, err := reconcileTagNames(ctx, srv.tagRepo, principal, names)
	if err != nil {
		return nil, err
	}

	refs := make([]usecase.TagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, usecase.TagRef{Type: "tags", ID: tag.ID})
	}

	return refs, nil
}

// loadOwnedTag loads a tag and verifies ownership. The ownership check runs
// on the loaded row before anything about it is returned, so a mismatch
// leaks nothing and mutates nothing.
func (srv *tagService) loadOwnedTag(ctx context.Context, tagRepo repository.TagRepository, principal entity.Principal, id uuid.UUID) (*entity.Tag, error) {
	tag, err := tagRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WithDetail(fmt.Sprintf("Couldn't find Tag with 'id'=%s", id))
		}

		return nil, errors.Wrap(err, "failed to load tag")
	}

	if tag.UserID != principal.UserID {
		srv.log(ctx).Warn("Tag ownership mismatch", slog.Any("tagID", id), slog.Any("userID", principal.UserID))

		return nil, domainerrors.ErrForbidden
	}

	return tag, nil
}

// reconcileTagNames is the find-or-create core shared by direct
// reconciliation and task updates. For each distinct requested name it
// either finds the principal's existing tag or creates one; a unique
// violation during create means a concurrent request won the insert, so the
// row is re-fetched instead of surfacing an error. Calling this twice with
// the same names therefore creates each tag at most once.
func reconcileTagNames(ctx context.Context, tagRepo repository.TagRepository, principal entity.Principal, names []string) ([]*entity.Tag, error) {
	distinct := distinctNames(names)
	if len(distinct) == 0 {
		return []*entity.Tag{}, nil
	}

	existing, err := tagRepo.FindByNamesAndOwner(ctx, distinct, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up existing tags")
	}

	byName := make(map[string]*entity.Tag, len(existing))
	for _, tag := range existing {
		byName[tag.Name] = tag
	}

	resolved := make([]*entity.Tag, 0, len(distinct))
	for _, name := range distinct {
		if tag, ok := byName[name]; ok {
			resolved = append(resolved, tag)

			continue
		}

		tag := &entity.Tag{Name: name, UserID: principal.UserID}
		err := tagRepo.Create(ctx, tag)
		if errors.Is(err, repository.ErrTagAlreadyExists) {
			// Lost the race; use the row the concurrent request created.
			tag, err = tagRepo.FindByNameAndOwner(ctx, name, principal.UserID)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve tag %q", name)
		}

		resolved = append(resolved, tag)
	}

	return resolved, nil
}

// distinctNames removes duplicates while preserving first-occurrence order.
func distinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	return distinct
}

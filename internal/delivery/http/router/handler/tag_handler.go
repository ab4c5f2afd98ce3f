package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"tasktag/internal/delivery/http/response"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tagRequest is the body of tag create and update requests.
type tagRequest struct {
	Attributes struct {
		Name *string `json:"name"`
	} `json:"attributes"`
}

// tagAttributes is the attribute bag of a tag resource.
type tagAttributes struct {
	Name string `json:"name"`
}

// TagHandler holds dependencies for tag-related handlers.
type TagHandler struct {
	uc     usecase.TagUsecase
	logger *slog.Logger
}

// NewTagHandler is the constructor for TagHandler, injected by Fx.
func NewTagHandler(uc usecase.TagUsecase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's tags, owner-scoped server-side.
func (h *TagHandler) List(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	tags, err := h.uc.ListTags(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	resources := make([]response.Resource, 0, len(tags))
	for _, tag := range tags {
		resources = append(resources, tagResource(tag))
	}

	return response.Data(c, http.StatusOK, resources)
}

// Show returns one tag owned by the caller.
func (h *TagHandler) Show(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := tagID(c)
	if err != nil {
		return err
	}

	tag, err := h.uc.GetTag(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, tagResource(tag))
}

// Create creates a tag owned by the caller.
func (h *TagHandler) Create(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetail("Invalid tag payload")
	}

	input := &usecase.CreateTagInput{}
	if req.Attributes.Name != nil {
		input.Name = *req.Attributes.Name
	}

	tag, err := h.uc.CreateTag(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, tagResource(tag))
}

// Update renames one tag owned by the caller.
func (h *TagHandler) Update(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := tagID(c)
	if err != nil {
		return err
	}

	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetail("Invalid tag payload")
	}

	tag, err := h.uc.UpdateTag(c.Request().Context(), principal, id, &usecase.UpdateTagInput{
		Name: req.Attributes.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, tagResource(tag))
}

// Delete removes one tag owned by the caller.
func (h *TagHandler) Delete(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := tagID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTag(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// tagResource renders a tag as a resource object.
func tagResource(tag *entity.Tag) response.Resource {
	return response.Resource{
		ID:         tag.ID.String(),
		Type:       "tags",
		Attributes: tagAttributes{Name: tag.Name},
	}
}

// tagID parses the path parameter. An unparsable id behaves exactly like an
// unknown one.
func tagID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrRecordNotFound.WithDetail(fmt.Sprintf("Couldn't find Tag with 'id'=%s", raw))
	}

	return id, nil
}

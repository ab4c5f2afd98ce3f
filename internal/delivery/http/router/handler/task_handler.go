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

// taskRequest is the body of task create and update requests. Tags is a
// pointer so an absent field is distinguishable from an explicit empty
// list: absent leaves the tag set alone, empty detaches everything.
type taskRequest struct {
	Attributes struct {
		Title *string   `json:"title"`
		Tags  *[]string `json:"tags"`
	} `json:"attributes"`
}

// taskAttributes is the attribute bag of a task resource.
type taskAttributes struct {
	Title string `json:"title"`
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's tasks. Any client-supplied owner filter is
// deliberately ignored; the scope always comes from the principal.
func (h *TaskHandler) List(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	resources := make([]response.Resource, 0, len(tasks))
	for _, task := range tasks {
		resources = append(resources, taskResource(task))
	}

	return response.Data(c, http.StatusOK, resources)
}

// Show returns one task owned by the caller.
func (h *TaskHandler) Show(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, taskResource(task))
}

// Create creates a task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetail("Invalid task payload")
	}

	input := &usecase.CreateTaskInput{}
	if req.Attributes.Title != nil {
		input.Title = *req.Attributes.Title
	}
	if req.Attributes.Tags != nil {
		input.TagNames = *req.Attributes.Tags
	}

	task, err := h.uc.CreateTask(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, taskResource(task))
}

// Update applies a partial update to one task owned by the caller.
func (h *TaskHandler) Update(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetail("Invalid task payload")
	}

	input := &usecase.UpdateTaskInput{
		Title: req.Attributes.Title,
	}
	if req.Attributes.Tags != nil {
		input.TagNames = *req.Attributes.Tags
		input.TagNamesPresent = true
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), principal, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, taskResource(task))
}

// Delete removes one task owned by the caller.
func (h *TaskHandler) Delete(c echo.Context) error {
	principal, err := requestPrincipal(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// taskResource renders a task with its tag relationships.
func taskResource(task *entity.Task) response.Resource {
	refs := make([]usecase.TagRef, 0, len(task.Tags))
	for _, tag := range task.Tags {
		refs = append(refs, usecase.TagRef{Type: "tags", ID: tag.ID})
	}

	return response.Resource{
		ID:         task.ID.String(),
		Type:       "tasks",
		Attributes: taskAttributes{Title: task.Title},
		Relationships: map[string]any{
			"tags": map[string]any{"data": refs},
		},
	}
}

// taskID parses the path parameter. An unparsable id behaves exactly like
// an unknown one.
func taskID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrRecordNotFound.WithDetail(fmt.Sprintf("Couldn't find Task with 'id'=%s", raw))
	}

	return id, nil
}

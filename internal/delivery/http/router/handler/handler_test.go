package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequestContext builds an echo context for the given request, optionally
// carrying an authenticated principal the way the middleware would.
func newRequestContext(method, target, body string, principal *entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if principal != nil {
		ctx := deliverycontext.WithPrincipal(req.Context(), *principal)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// --- stubs ---

type stubUserUsecase struct {
	output *usecase.AuthOutput
	user   *entity.User
	err    error
}

func (s *stubUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.output, s.err
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.output, s.err
}

func (s *stubUserUsecase) AutoLogin(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	return s.user, s.err
}

type stubTaskUsecase struct {
	tasks []*entity.Task
	task  *entity.Task
	err   error

	listPrincipal   entity.Principal
	lastUpdateInput *usecase.UpdateTaskInput
}

func (s *stubTaskUsecase) ListTasks(ctx context.Context, principal entity.Principal) ([]*entity.Task, error) {
	s.listPrincipal = principal

	return s.tasks, s.err
}

func (s *stubTaskUsecase) GetTask(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Task, error) {
	return s.task, s.err
}

func (s *stubTaskUsecase) CreateTask(ctx context.Context, principal entity.Principal, input *usecase.CreateTaskInput) (*entity.Task, error) {
	return s.task, s.err
}

func (s *stubTaskUsecase) UpdateTask(ctx context.Context, principal entity.Principal, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	s.lastUpdateInput = input

	return s.task, s.err
}

func (s *stubTaskUsecase) DeleteTask(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	return s.err
}

// --- tests ---

func TestUserHandler_Register_ResponseShape(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice_01"}
	h := NewUserHandler(&stubUserUsecase{
		output: &usecase.AuthOutput{User: user, Token: "issued_token"},
	}, newDiscardLogger())

	c, rec := newRequestContext(http.MethodPost, "/users",
		`{"username":"alice_01","password":"Password123!"}`, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":"alice_01","type":"users","attributes":{"username":"alice_01","token":"issued_token"}}}`,
		rec.Body.String())
}

func TestUserHandler_AutoLogin_OmitsToken(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	user := &entity.User{ID: principal.UserID, Username: "alice_01"}
	h := NewUserHandler(&stubUserUsecase{user: user}, newDiscardLogger())

	c, rec := newRequestContext(http.MethodGet, "/autologin", "", &principal)

	require.NoError(t, h.AutoLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":"alice_01","type":"users","attributes":{"username":"alice_01"}}}`,
		rec.Body.String())
}

func TestTaskHandler_List_IgnoresClientOwnerFilter(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	stub := &stubTaskUsecase{tasks: []*entity.Task{}}
	h := NewTaskHandler(stub, newDiscardLogger())

	// The filter names another user; the handler never forwards it.
	c, rec := newRequestContext(http.MethodGet,
		"/tasks?filter%5Buser_id%5D="+uuid.NewString(), "", &principal)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, principal, stub.listPrincipal)
}

func TestTaskHandler_List_WithoutPrincipal(t *testing.T) {
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	c, _ := newRequestContext(http.MethodGet, "/tasks", "", nil)

	err := h.List(c)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestTaskHandler_Show_UnparsableID(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	c, _ := newRequestContext(http.MethodGet, "/tasks/not-a-uuid", "", &principal)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Show(c)

	require.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestTaskHandler_Update_DistinguishesAbsentAndEmptyTags(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	taskID := uuid.New()
	task := &entity.Task{ID: taskID, Title: "Pay rent", UserID: principal.UserID}

	tests := []struct {
		name         string
		body         string
		wantPresent  bool
		wantTagNames []string
	}{
		{
			name:        "tags field absent",
			body:        `{"attributes":{"title":"Pay rent"}}`,
			wantPresent: false,
		},
		{
			name:         "tags field empty",
			body:         `{"attributes":{"tags":[]}}`,
			wantPresent:  true,
			wantTagNames: []string{},
		},
		{
			name:         "tags field populated",
			body:         `{"attributes":{"tags":["Tomorrow","Bills"]}}`,
			wantPresent:  true,
			wantTagNames: []string{"Tomorrow", "Bills"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTaskUsecase{task: task}
			h := NewTaskHandler(stub, newDiscardLogger())

			c, rec := newRequestContext(http.MethodPatch, "/tasks/"+taskID.String(), tt.body, &principal)
			c.SetParamNames("id")
			c.SetParamValues(taskID.String())

			require.NoError(t, h.Update(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, stub.lastUpdateInput)
			assert.Equal(t, tt.wantPresent, stub.lastUpdateInput.TagNamesPresent)
			assert.Equal(t, tt.wantTagNames, stub.lastUpdateInput.TagNames)
		})
	}
}

func TestTaskHandler_Show_RendersTagRelationships(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	tagID := uuid.New()
	task := &entity.Task{
		ID:     uuid.New(),
		Title:  "Pay rent",
		UserID: principal.UserID,
		Tags:   []*entity.Tag{{ID: tagID, Name: "Bills", UserID: principal.UserID}},
	}
	h := NewTaskHandler(&stubTaskUsecase{task: task}, newDiscardLogger())

	c, rec := newRequestContext(http.MethodGet, "/tasks/"+task.ID.String(), "", &principal)
	c.SetParamNames("id")
	c.SetParamValues(task.ID.String())

	require.NoError(t, h.Show(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":"`+task.ID.String()+`","type":"tasks","attributes":{"title":"Pay rent"},"relationships":{"tags":{"data":[{"type":"tags","id":"`+tagID.String()+`"}]}}}}`,
		rec.Body.String())
}

func TestTaskHandler_Delete_NoContent(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), Username: "alice_01"}
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	taskID := uuid.New()
	c, rec := newRequestContext(http.MethodDelete, "/tasks/"+taskID.String(), "", &principal)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

package impl

import (
	"context"
	"testing"

	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	mockRepo "tasktag/internal/mocks/repository"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service   usecase.TaskUsecase
	taskRepo  *mockRepo.MockTaskRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewTaskService(TaskServiceParams{
		TaskRepo:  taskRepo,
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return taskServiceFixtures{
		service:   service,
		taskRepo:  taskRepo,
		txManager: txManager,
	}
}

// expectTransaction makes the transaction manager run the supplied function
// against the given factory and propagate its error, the way the real
// manager commits or rolls back.
func expectTransaction(ctx context.Context, fx taskServiceFixtures, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTaskService_ListTasks_ScopedToPrincipal(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	tasks := []*entity.Task{
		{ID: uuid.New(), Title: "Pay rent", UserID: principal.UserID},
		{ID: uuid.New(), Title: "Buy milk", UserID: principal.UserID},
	}

	fx.taskRepo.EXPECT().ListByOwner(ctx, principal.UserID).Return(tasks, nil)

	got, err := fx.service.ListTasks(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestTaskService_GetTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Pay rent", UserID: principal.UserID}

	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

	got, err := fx.service.GetTask(ctx, principal, task.ID)

	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskService_GetTask_UnknownID(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	id := uuid.New()

	fx.taskRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.GetTask(ctx, principal, id)

	require.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestTaskService_GetTask_OwnedByAnotherUser(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Secret", UserID: uuid.New()}

	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

	_, err := fx.service.GetTask(ctx, principal, task.ID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTaskService_CreateTask_BlankTitle(t *testing.T) {
	fx := createTestTaskService(t)

	for _, title := range []string{"", "   "} {
		_, err := fx.service.CreateTask(context.Background(), newTestPrincipal(), &usecase.CreateTaskInput{
			Title: title,
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestTaskService_CreateTask_WithTags(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	taskID := uuid.New()
	billsTag := &entity.Tag{ID: uuid.New(), Name: "Bills", UserID: principal.UserID}
	tomorrowID := uuid.New()

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TaskRepo().Return(txTaskRepo)
	factory.EXPECT().TagRepo().Return(txTagRepo)

	txTaskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = taskID
		}).
		Return(nil)

	txTagRepo.EXPECT().
		FindByNamesAndOwner(ctx, []string{"Tomorrow", "Bills"}, principal.UserID).
		Return([]*entity.Tag{billsTag}, nil)

	txTagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(ctx context.Context, tag *entity.Tag) {
			tag.ID = tomorrowID
		}).
		Return(nil)

	txTaskRepo.EXPECT().
		ReplaceTags(ctx, taskID, []uuid.UUID{tomorrowID, billsTag.ID}).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	task, err := fx.service.CreateTask(ctx, principal, &usecase.CreateTaskInput{
		Title:    "Pay rent",
		TagNames: []string{"Tomorrow", "Bills"},
	})

	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, principal.UserID, task.UserID)
	require.Len(t, task.Tags, 2)
	assert.Equal(t, "Tomorrow", task.Tags[0].Name)
	assert.Equal(t, "Bills", task.Tags[1].Name)
}

func TestTaskService_UpdateTask_ReplacesTagSet(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Pay rent", UserID: principal.UserID}
	billsTag := &entity.Tag{ID: uuid.New(), Name: "Bills", UserID: principal.UserID}
	tomorrowID := uuid.New()

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TaskRepo().Return(txTaskRepo)
	factory.EXPECT().TagRepo().Return(txTagRepo)

	txTaskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

	// "Bills" exists already, "Tomorrow" does not: exactly one create.
	txTagRepo.EXPECT().
		FindByNamesAndOwner(ctx, []string{"Tomorrow", "Bills"}, principal.UserID).
		Return([]*entity.Tag{billsTag}, nil)

	txTagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(ctx context.Context, tag *entity.Tag) {
			tag.ID = tomorrowID
		}).
		Return(nil)

	txTaskRepo.EXPECT().
		ReplaceTags(ctx, task.ID, []uuid.UUID{tomorrowID, billsTag.ID}).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	updated, err := fx.service.UpdateTask(ctx, principal, task.ID, &usecase.UpdateTaskInput{
		TagNames:        []string{"Tomorrow", "Bills"},
		TagNamesPresent: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pay rent", updated.Title)
	require.Len(t, updated.Tags, 2)
	assert.Equal(t, "Tomorrow", updated.Tags[0].Name)
	assert.Equal(t, "Bills", updated.Tags[1].Name)
}

func TestTaskService_UpdateTask_AbsentTagsFieldLeavesTagsAlone(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	existingTag := &entity.Tag{ID: uuid.New(), Name: "Bills", UserID: principal.UserID}
	task := &entity.Task{
		ID:     uuid.New(),
		Title:  "Pay rent",
		UserID: principal.UserID,
		Tags:   []*entity.Tag{existingTag},
	}
	newTitle := "Pay rent today"

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TaskRepo().Return(txTaskRepo)

	txTaskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)
	txTaskRepo.EXPECT().UpdateTitle(ctx, task.ID, newTitle).Return(nil)

	expectTransaction(ctx, fx, factory)

	updated, err := fx.service.UpdateTask(ctx, principal, task.ID, &usecase.UpdateTaskInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, []*entity.Tag{existingTag}, updated.Tags)
}

func TestTaskService_UpdateTask_EmptyTagListDetachesAll(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{
		ID:     uuid.New(),
		Title:  "Pay rent",
		UserID: principal.UserID,
		Tags:   []*entity.Tag{{ID: uuid.New(), Name: "Bills", UserID: principal.UserID}},
	}

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTagRepo := mockRepo.NewMockTagRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TaskRepo().Return(txTaskRepo)
	factory.EXPECT().TagRepo().Return(txTagRepo)

	txTaskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)
	txTaskRepo.EXPECT().ReplaceTags(ctx, task.ID, []uuid.UUID{}).Return(nil)

	expectTransaction(ctx, fx, factory)

	updated, err := fx.service.UpdateTask(ctx, principal, task.ID, &usecase.UpdateTaskInput{
		TagNames:        []string{},
		TagNamesPresent: true,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestTaskService_UpdateTask_ForbiddenBeforeAnyWrite(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Secret", UserID: uuid.New()}
	newTitle := "Hijacked"

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TaskRepo().Return(txTaskRepo)

	// Only the load runs; no UpdateTitle, no ReplaceTags.
	txTaskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

	expectTransaction(ctx, fx, factory)

	_, err := fx.service.UpdateTask(ctx, principal, task.ID, &usecase.UpdateTaskInput{
		Title:           &newTitle,
		TagNames:        []string{"Stolen"},
		TagNamesPresent: true,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Pay rent", UserID: principal.UserID}

	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)
	fx.taskRepo.EXPECT().Delete(ctx, task.ID).Return(nil)

	require.NoError(t, fx.service.DeleteTask(ctx, principal, task.ID))
}

func TestTaskService_DeleteTask_OwnedByAnotherUser(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	task := &entity.Task{ID: uuid.New(), Title: "Secret", UserID: uuid.New()}

	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

	err := fx.service.DeleteTask(ctx, principal, task.ID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

package impl

import (
	"context"
	"testing"

	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	mockRepo "tasktag/internal/mocks/repository"
	mockSvc "tasktag/internal/mocks/service"
	"tasktag/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service    usecase.UserUsecase
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	tokenCodec *mockSvc.MockTokenCodec
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenCodec := mockSvc.NewMockTokenCodec(t)

	service := NewUserService(UserServiceParams{
		UserRepo:   userRepo,
		Hasher:     hasher,
		TokenCodec: tokenCodec,
		Logger:     newDiscardLogger(),
	})

	return userServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		hasher:     hasher,
		tokenCodec: tokenCodec,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		Username: "alice_01",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	fx.tokenCodec.EXPECT().Encode(userID).Return("issued_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "issued_token", output.Token)
}

func TestUserService_Register_DisallowedUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	for _, username := range []string{"", "bad name", "bad!name", "名前"} {
		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: username,
			Password: "Password123!",
		})

		require.ErrorIs(t, err, domainerrors.ErrInvalidRegistration)
	}
}

func TestUserService_Register_EmptyPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice_01",
		Password: "",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidRegistration)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice_01",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUsernameTaken)

	_, err := fx.service.Register(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice_01",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice_01").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenCodec.EXPECT().Encode(user.ID).Return("issued_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice_01",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "issued_token", output.Token)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "nobody",
		Password: "whatever",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice_01",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice_01").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice_01",
		Password: "wrong",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_AutoLogin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := newTestPrincipal()
	user := &entity.User{ID: principal.UserID, Username: principal.Username}

	fx.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(user, nil)

	got, err := fx.service.AutoLogin(ctx, principal)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_AutoLogin_VanishedUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	principal := newTestPrincipal()

	fx.userRepo.EXPECT().
		FindByID(ctx, principal.UserID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.AutoLogin(ctx, principal)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

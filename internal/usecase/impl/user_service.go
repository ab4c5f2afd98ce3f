// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	"tasktag/internal/domain/service"
	"tasktag/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokenCodec service.TokenCodec
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	TokenCodec service.TokenCodec
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokenCodec: params.TokenCodec,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user and issues a credential for it. Username
// validation happens before any write; the storage unique constraint decides
// the winner when two registrations race for the same name, and the loser
// surfaces as a conflict rather than a second row.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if !entity.ValidUsername(input.Username) || input.Password == "" {
		srv.log(ctx).Warn("Rejected registration input", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidRegistration
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			srv.log(ctx).Warn("Username already taken", slog.String("username", input.Username))

			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenCodec.Encode(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login verifies a username/password pair and issues a credential. A missing
// user and a wrong password produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenCodec.Encode(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential during login")
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// AutoLogin returns the user behind an already authenticated principal.
// The authentication middleware has run by the time this is called, so a
// missing user here means the account vanished between checks.
func (srv *userService) AutoLogin(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load user during auto login")
	}

	return user, nil
}

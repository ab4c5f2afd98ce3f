package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/delivery/http/response"
	"tasktag/internal/domain/entity"
	domainerrors "tasktag/internal/domain/errors"
	"tasktag/internal/domain/repository"
	"tasktag/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware authenticates requests from the Authorization header.
// Every failure mode - missing header, malformed value, unverifiable
// credential, unknown user - terminates the request with the same 401
// envelope so the response leaks nothing about which step failed.
type AuthMiddleware struct {
	tokenCodec service.TokenCodec
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenCodec service.TokenCodec
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenCodec: params.TokenCodec,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// Authenticate resolves the request's principal or terminates with 401.
// On success the principal is placed on the request context for handlers
// and usecases to consume.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := bearerCredential(c.Request().Header.Get("Authorization"))
		if credential == "" {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		userID, err := m.tokenCodec.Decode(credential)
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		ctx := c.Request().Context()

		user, err := m.userRepo.FindByID(ctx, userID)
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		ctx = deliverycontext.WithPrincipal(ctx, entity.PrincipalFromUser(user))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// bearerCredential extracts the credential from an Authorization header
// value. The value is split on whitespace and the second token is the
// credential; anything else yields an empty string.
func bearerCredential(header string) string {
	if header == "" {
		return ""
	}

	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}

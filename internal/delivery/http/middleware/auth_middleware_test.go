package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/domain/entity"
	"tasktag/internal/domain/repository"
	"tasktag/internal/domain/service"
	mockRepo "tasktag/internal/mocks/repository"
	mockSvc "tasktag/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const unauthorizedEnvelope = `{"errors":[{"status":"unauthorized","title":"unauthorized","detail":"Please log in"}]}`

type authFixtures struct {
	middleware *AuthMiddleware
	tokenCodec *mockSvc.MockTokenCodec
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	tokenCodec := mockSvc.NewMockTokenCodec(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenCodec: tokenCodec,
		UserRepo:   userRepo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authFixtures{
		middleware: m,
		tokenCodec: tokenCodec,
		userRepo:   userRepo,
	}
}

// performAuth runs the middleware over a request with the given
// Authorization header and reports whether the inner handler ran, plus the
// principal it observed.
func performAuth(t *testing.T, fx authFixtures, authHeader string) (*httptest.ResponseRecorder, bool, entity.Principal) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var handlerRan bool
	var seenPrincipal entity.Principal

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		handlerRan = true
		principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
		require.True(t, ok)
		seenPrincipal = principal

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, handlerRan, seenPrincipal
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, handlerRan, _ := performAuth(t, fx, "")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, unauthorizedEnvelope, rec.Body.String())
}

func TestAuthMiddleware_HeaderWithoutCredential(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// A scheme with nothing after it never reaches the codec.
	rec, handlerRan, _ := performAuth(t, fx, "Bearer")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, unauthorizedEnvelope, rec.Body.String())
}

func TestAuthMiddleware_UnverifiableCredential(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenCodec.EXPECT().
		Decode("garbage").
		Return(uuid.Nil, service.ErrInvalidCredential)

	rec, handlerRan, _ := performAuth(t, fx, "Bearer garbage")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, unauthorizedEnvelope, rec.Body.String())
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenCodec.EXPECT().Decode("valid-token").Return(userID, nil)
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	rec, handlerRan, _ := performAuth(t, fx, "Bearer valid-token")

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, unauthorizedEnvelope, rec.Body.String())
}

func TestAuthMiddleware_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: uuid.New(), Username: "alice_01"}
	fx.tokenCodec.EXPECT().Decode("valid-token").Return(user.ID, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	rec, handlerRan, principal := performAuth(t, fx, "Bearer valid-token")

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, user.Username, principal.Username)
}

func TestAuthMiddleware_SplitsOnWhitespace(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: uuid.New(), Username: "alice_01"}
	// The second whitespace-separated field is the credential regardless of
	// the scheme word.
	fx.tokenCodec.EXPECT().Decode("the-token").Return(user.ID, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	_, handlerRan, _ := performAuth(t, fx, "Token  the-token")

	assert.True(t, handlerRan)
}

package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tasktag/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStatusToken(t *testing.T) {
	tests := []struct {
		code  int
		token string
	}{
		{http.StatusUnauthorized, "unauthorized"},
		{http.StatusForbidden, "forbidden"},
		{http.StatusNotFound, "not_found"},
		{http.StatusConflict, "conflict"},
		{http.StatusInternalServerError, "internal_server_error"},
		// Unmapped codes fall back to the lowercased status text.
		{http.StatusBadGateway, "bad_gateway"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.token, StatusToken(tt.code))
	}
}

func TestError_EnvelopeShape(t *testing.T) {
	c, rec := newTestContext(t)

	err := Error(c, http.StatusNotFound, "record_not_found", "Couldn't find Task with 'id'=abc")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"not_found","title":"record_not_found","detail":"Couldn't find Task with 'id'=abc"}]}`,
		rec.Body.String())
}

func TestAppError_Unauthenticated(t *testing.T) {
	c, rec := newTestContext(t)

	err := AppError(c, domainerrors.ErrUnauthenticated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"unauthorized","title":"unauthorized","detail":"Please log in"}]}`,
		rec.Body.String())
}

func TestAppError_ForbiddenHasEmptyDetail(t *testing.T) {
	c, rec := newTestContext(t)

	err := AppError(c, domainerrors.ErrForbidden)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"forbidden","title":"forbidden","detail":""}]}`,
		rec.Body.String())
}

func TestData_WrapsUnderDataKey(t *testing.T) {
	c, rec := newTestContext(t)

	err := Data(c, http.StatusCreated, Resource{
		ID:         "alice",
		Type:       "users",
		Attributes: map[string]string{"username": "alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"data":{"id":"alice","type":"users","attributes":{"username":"alice"}}}`,
		rec.Body.String())
}

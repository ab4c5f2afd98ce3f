package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tasktag/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func performErrorHandling(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := performErrorHandling(t, domainerrors.ErrRecordNotFound.WithDetail("Couldn't find Task with 'id'=abc"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"not_found","title":"record_not_found","detail":"Couldn't find Task with 'id'=abc"}]}`,
		rec.Body.String())
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrForbidden, "update task")

	rec := performErrorHandling(t, wrapped)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"forbidden","title":"forbidden","detail":""}]}`,
		rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := performErrorHandling(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"status":"not_found","title":"not_found","detail":"Not Found"}]}`,
		rec.Body.String())
}

func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	rec := performErrorHandling(t, errors.New("storage exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The raw message never reaches the client.
	assert.NotContains(t, rec.Body.String(), "storage exploded")
	assert.JSONEq(t,
		`{"errors":[{"status":"internal_server_error","title":"internal_server_error","detail":"Internal server error"}]}`,
		rec.Body.String())
}

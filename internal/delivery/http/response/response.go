// Package response renders the API's JSON bodies: resource documents on
// success and the standard error envelope on any rejected request.
package response

import (
	"net/http"
	"strings"

	domainerrors "tasktag/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorObject is a single error inside the envelope.
type ErrorObject struct {
	Status string `json:"status"` // symbolic status token, e.g. "unauthorized"
	Title  string `json:"title"`  // error kind, e.g. "record_not_found"
	Detail string `json:"detail"` // human-readable message
}

// ErrorEnvelope is the body of every rejected request. Clients can rely on
// this exact shape regardless of which layer rejected the request.
type ErrorEnvelope struct {
	Errors []ErrorObject `json:"errors"`
}

// Document wraps a resource (or a list of resources) under the top-level
// data key.
type Document struct {
	Data any `json:"data"`
}

// Resource is a minimal resource object: identifier, type and a bag of
// attributes, plus optional relationships.
type Resource struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Attributes    any            `json:"attributes"`
	Relationships map[string]any `json:"relationships,omitempty"`
}

// statusTokens maps HTTP codes to the symbolic token rendered in the
// envelope's status field.
var statusTokens = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable_entity",
	http.StatusInternalServerError: "internal_server_error",
}

// StatusToken returns the symbolic token for an HTTP status code.
func StatusToken(code int) string {
	if token, ok := statusTokens[code]; ok {
		return token
	}

	return strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_")
}

// Error writes the envelope for an arbitrary status/title/detail triple.
func Error(c echo.Context, httpCode int, title, detail string) error {
	return c.JSON(httpCode, ErrorEnvelope{
		Errors: []ErrorObject{{
			Status: StatusToken(httpCode),
			Title:  title,
			Detail: detail,
		}},
	})
}

// AppError writes the envelope for an application error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.Title(), appErr.Detail())
}

// Data writes a success document with the given status code.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Document{Data: data})
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "tasktag/internal/delivery/context"
	"tasktag/internal/delivery/http/response"
	domainerrors "tasktag/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error escaping a handler into the standard
// error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		token := response.StatusToken(httpErr.Code)
		_ = response.Error(c, httpErr.Code, token, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Anything else is an unexpected fault; log it and hide the detail.
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternal.Title(), domainerrors.ErrInternal.Detail())
}

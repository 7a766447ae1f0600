package middleware

import (
	"log/slog"
	"net/http"

	"zenvira/internal/delivery/api/response"
	deliverycontext "zenvira/internal/delivery/context"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Clients get the envelope with a message only; the log keeps the error kind and chain.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := domainerrors.AsAppError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logInternal(log, c, err, appErr.ErrorCode())
			_ = response.InternalServerError(c, internalErrorMessage)

			return
		}

		log.Debug("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("error", err.Error()),
		)
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logInternal(log, c, err, "INTERNAL_ERROR")
	_ = response.InternalServerError(c, internalErrorMessage)
}

func (m *ErrorMiddleware) logInternal(log *slog.Logger, c echo.Context, err error, code string) {
	log.Error("Unhandled error",
		slog.String("code", code),
		slog.String("kind", errors.Kind(err)),
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

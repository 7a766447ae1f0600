package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored by the delivery layer.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID carries the request ID in both directions and in push message attributes.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequest scopes ctx to one request: it stores the request ID and a logger tagged with it.
// Services and event publishing read both back through the getters below.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) (context.Context, *slog.Logger) {
	reqLogger := logger.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, reqLogger), reqLogger
}

// BindRequest applies WithRequest to the request of an echo context and echoes the ID back.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) *slog.Logger {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx, reqLogger := WithRequest(c.Request().Context(), requestID, logger)
	c.SetRequest(c.Request().WithContext(ctx))

	return reqLogger
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" outside a request, e.g. in the session purger.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault is what usecases call to log with the request ID when there is one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

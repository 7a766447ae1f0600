package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"zenvira/internal/delivery/api/response"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's principal and guards routes by role.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC, logger: logger}
}

// RequireAuth validates the bearer access token and attaches the principal to the request.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Unauthorized: please sign in")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "Unauthorized: invalid authorization header")
		}

		ctx := c.Request().Context()
		principal, err := m.identityUC.ResolveSession(ctx, token)
		if err != nil {
			if domainerrors.HTTPStatus(err) >= http.StatusInternalServerError {
				return err
			}
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Session rejected", slog.Any("error", err))

			return response.Unauthorized(c, "Unauthorized: invalid or expired session")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole is a middleware factory that allows only the given roles.
// It must be used AFTER RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return response.Unauthorized(c, "Unauthorized: please sign in")
			}

			if !principal.HasRole(allowed...) {
				return response.Forbidden(c, "Forbidden: you do not have access to this resource")
			}

			return next(c)
		}
	}
}

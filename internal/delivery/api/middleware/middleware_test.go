package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zenvira/internal/delivery/api/response"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"
	mockUC "zenvira/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

// serve runs a request through RequireAuth, then the optional role guard, then a handler
// that echoes the principal's role.
func serve(t *testing.T, mw *AuthMiddleware, authHeader string, allowed ...entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	handler := func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		fromCtx := deliverycontext.PrincipalFromContext(c.Request().Context())
		assert.Same(t, principal, fromCtx)

		return response.OK(c, map[string]string{"role": principal.Role.String()})
	}

	middlewares := []echo.MiddlewareFunc{mw.RequireAuth}
	if len(allowed) > 0 {
		middlewares = append(middlewares, mw.RequireRole(allowed...))
	}
	e.GET("/guarded", handler, middlewares...)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Message)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected session", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.On("ResolveSession", mock.Anything, "stale").
			Return(nil, errors.WithStack(domainerrors.ErrUnauthenticated))

		rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("identity provider failure is a 500", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.On("ResolveSession", mock.Anything, "token").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user"))

		rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "Bearer token")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("valid session attaches principal", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.On("ResolveSession", mock.Anything, "good").
			Return(&entity.Principal{ID: uuid.New(), Role: entity.RoleCustomer}, nil)

		rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "Bearer good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"customer"`)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		allowed  []entity.Role
		wantCode int
	}{
		{name: "admin on admin route", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleAdmin}, wantCode: http.StatusOK},
		{name: "seller on admin route", role: entity.RoleSeller, allowed: []entity.Role{entity.RoleAdmin}, wantCode: http.StatusForbidden},
		{name: "customer on seller route", role: entity.RoleCustomer, allowed: []entity.Role{entity.RoleSeller, entity.RoleAdmin}, wantCode: http.StatusForbidden},
		{name: "admin on seller route", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleSeller, entity.RoleAdmin}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identityUC := mockUC.NewMockIdentityUsecase(t)
			identityUC.On("ResolveSession", mock.Anything, "token").
				Return(&entity.Principal{ID: uuid.New(), Role: tt.role}, nil)

			rec := serve(t, NewAuthMiddleware(identityUC, discardLogger()), "Bearer token", tt.allowed...)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				assert.False(t, decodeEnvelope(t, rec).Success)
			}
		})
	}
}

func TestRequireRole_WithoutPrincipal(t *testing.T) {
	mw := NewAuthMiddleware(mockUC.NewMockIdentityUsecase(t), discardLogger())
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	called := false
	err := mw.RequireRole(entity.RoleAdmin)(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "app error keeps its status and message",
			err:         errors.WithStack(domainerrors.ErrCategorySlugTaken),
			wantCode:    http.StatusConflict,
			wantMessage: domainerrors.ErrCategorySlugTaken.Message(),
		},
		{
			name:        "validation message",
			err:         domainerrors.Validation("Rating must be between 1 and 5"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Rating must be between 1 and 5",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantCode:    http.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error is generic",
			err:         errors.New("pq: relation does not exist"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "database error is generic",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to update order"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

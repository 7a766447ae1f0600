package handler

import (
	"net/http"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	UserUC     usecase.UserUsecase
}

// AuthHandler exposes the identity provider's session endpoints.
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	userUC     usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		userUC:     params.UserUC,
	}
}

// SignUpRequest represents the email sign-up body.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// SignInRequest represents the email sign-in body.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignOutRequest carries the refresh token to revoke. An empty token is a no-op.
type SignOutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SignUp handles POST /api/auth/sign-up/email.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.identityUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "Account created successfully")
}

// SignIn handles POST /api/auth/sign-in/email.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.identityUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output, "Signed in successfully")
}

// Refresh handles POST /api/auth/refresh. The presented token is rotated.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.identityUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// SignOut handles POST /api/auth/sign-out.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req SignOutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.identityUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}

// GetSession handles GET /api/auth/get-session for the authenticated caller.
func (h *AuthHandler) GetSession(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetMe(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{"user": user})
}

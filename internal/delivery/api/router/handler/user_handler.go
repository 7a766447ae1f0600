package handler

import (
	"strings"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves profiles, user administration and seller onboarding.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// UpdateProfileRequest represents the body of PUT /api/users/me.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1,max=100"`
	Image *string `json:"image" validate:"omitnil,max=2048"`
	Phone *string `json:"phone" validate:"omitnil,max=30"`
}

// UpdateRoleRequest represents the body of PATCH /api/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateUserStatusRequest represents the body of PATCH /api/users/:id/status.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplySellerRequest represents the body of POST /api/users/seller/apply.
type ApplySellerRequest struct {
	StoreName string `json:"storeName" validate:"required,max=150"`
	Phone     string `json:"phone" validate:"required,max=30"`
	Address   string `json:"address" validate:"required,max=500"`
	Note      string `json:"note" validate:"max=1000"`
}

// ReviewApplicationRequest represents the body of PUT /api/users/seller-applications/:id.
type ReviewApplicationRequest struct {
	Status string `json:"status" validate:"required"`
}

// GetMe handles GET /api/users/me.
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetMe(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateMe(c.Request().Context(), principal, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Image: req.Image,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profile updated successfully")
}

// List handles GET /api/users. Unknown role and status filters are ignored.
func (h *UserHandler) List(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Search: strings.TrimSpace(c.QueryParam("search")),
	}
	input.Page, input.Limit = pageQuery(c)

	page, err := h.userUC.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// UpdateRole handles PATCH /api/users/:id/role.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actor, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, _ := entity.ParseRole(req.Role)
	user, err := h.userUC.UpdateRole(c.Request().Context(), actor, id, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "User role updated successfully")
}

// UpdateStatus handles PATCH /api/users/:id/status.
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	actor, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, _ := entity.ParseUserStatus(req.Status)
	user, err := h.userUC.UpdateStatus(c.Request().Context(), actor, id, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "User status updated successfully")
}

// ApplySeller handles POST /api/users/seller/apply.
func (h *UserHandler) ApplySeller(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req ApplySellerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	application, err := h.userUC.ApplySeller(c.Request().Context(), principal, &usecase.ApplySellerInput{
		StoreName: req.StoreName,
		Phone:     req.Phone,
		Address:   req.Address,
		Note:      req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, application, "Seller application submitted")
}

// GetMyApplication handles GET /api/users/seller/application.
func (h *UserHandler) GetMyApplication(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	application, err := h.userUC.GetMyApplication(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, application)
}

// ListApplications handles GET /api/users/seller-applications.
func (h *UserHandler) ListApplications(c echo.Context) error {
	input := &usecase.ListApplicationsInput{}
	input.Page, input.Limit = pageQuery(c)

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status, ok := entity.ParseApplicationStatus(raw)
		if !ok {
			return domainerrors.Validation("Invalid status")
		}
		input.Status = &status
	}

	page, err := h.userUC.ListSellerApplications(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// GetApplication handles GET /api/users/seller-applications/:id.
func (h *UserHandler) GetApplication(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.userUC.GetSellerApplication(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, application)
}

// ReviewApplication handles PUT /api/users/seller-applications/:id.
func (h *UserHandler) ReviewApplication(c echo.Context) error {
	reviewer, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, _ := entity.ParseApplicationStatus(req.Status)
	application, err := h.userUC.UpdateSellerApplicationStatus(c.Request().Context(), id, status, reviewer.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, application, "Seller application "+string(application.Status))
}

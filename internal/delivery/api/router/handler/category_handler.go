package handler

import (
	"net/http"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category catalogue.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// CreateCategoryRequest represents the body of POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"max=120"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateCategoryRequest represents the body of PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitnil,min=1,max=120"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories)
}

// GetBySlug handles GET /api/categories/:slug.
func (h *CategoryHandler) GetBySlug(c echo.Context) error {
	category, err := h.categoryUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category, "Category created successfully")
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, &usecase.UpdateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category, "Category updated successfully")
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

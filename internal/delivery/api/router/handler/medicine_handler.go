package handler

import (
	"net/http"
	"strings"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MedicineHandler serves the product catalogue and seller listings.
type MedicineHandler struct {
	medicineUC usecase.MedicineUsecase
}

// NewMedicineHandler is the constructor for MedicineHandler.
func NewMedicineHandler(medicineUC usecase.MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{medicineUC: medicineUC}
}

// CreateMedicineRequest represents the body of POST /api/medicines.
type CreateMedicineRequest struct {
	Name                 string          `json:"name" validate:"required,max=200"`
	Slug                 string          `json:"slug" validate:"max=220"`
	Description          string          `json:"description" validate:"max=5000"`
	Manufacturer         string          `json:"manufacturer" validate:"max=200"`
	Price                decimal.Decimal `json:"price"`
	Stock                int             `json:"stock" validate:"min=0"`
	Image                string          `json:"image" validate:"omitempty,url"`
	RequiresPrescription bool            `json:"requiresPrescription"`
	Status               string          `json:"status" validate:"omitempty,oneof=active inactive"`
	CategoryID           string          `json:"categoryId" validate:"required,uuid"`
}

// UpdateMedicineRequest represents the body of PUT /api/medicines/:id.
type UpdateMedicineRequest struct {
	Name                 *string          `json:"name" validate:"omitnil,min=1,max=200"`
	Slug                 *string          `json:"slug" validate:"omitnil,min=1,max=220"`
	Description          *string          `json:"description" validate:"omitnil,max=5000"`
	Manufacturer         *string          `json:"manufacturer" validate:"omitnil,max=200"`
	Price                *decimal.Decimal `json:"price"`
	Stock                *int             `json:"stock" validate:"omitnil,min=0"`
	Image                *string          `json:"image" validate:"omitnil,max=2048"`
	RequiresPrescription *bool            `json:"requiresPrescription"`
	Status               *string          `json:"status" validate:"omitnil,oneof=active inactive"`
	CategoryID           *string          `json:"categoryId" validate:"omitnil,uuid"`
}

// List handles GET /api/medicines with search, category, price range, sort and paging.
func (h *MedicineHandler) List(c echo.Context) error {
	minPrice, err := decimalQuery(c, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := decimalQuery(c, "maxPrice")
	if err != nil {
		return err
	}

	input := &usecase.ListMedicinesInput{
		Search:       strings.TrimSpace(c.QueryParam("search")),
		CategorySlug: strings.TrimSpace(c.QueryParam("category")),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Sort:         entity.ParseMedicineSort(c.QueryParam("sort")),
	}
	input.Page, input.Limit = pageQuery(c)

	if raw := strings.TrimSpace(c.QueryParam("sellerId")); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.Validation("Invalid sellerId")
		}
		input.SellerID = &sellerID
	}

	page, err := h.medicineUC.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// GetBySlug handles GET /api/medicines/:slug.
func (h *MedicineHandler) GetBySlug(c echo.Context) error {
	medicine, err := h.medicineUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, medicine)
}

// ListMine handles GET /api/medicines/seller/me.
func (h *MedicineHandler) ListMine(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	pageNum, limit := pageQuery(c)
	page, err := h.medicineUC.ListBySeller(c.Request().Context(), principal, pageNum, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// Create handles POST /api/medicines.
func (h *MedicineHandler) Create(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req CreateMedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	medicine, err := h.medicineUC.Create(c.Request().Context(), principal, &usecase.CreateMedicineInput{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Description:          req.Description,
		Manufacturer:         req.Manufacturer,
		Price:                req.Price,
		Stock:                req.Stock,
		Image:                req.Image,
		RequiresPrescription: req.RequiresPrescription,
		Status:               entity.MedicineStatus(req.Status),
		CategoryID:           uuid.MustParse(req.CategoryID),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, medicine, "Medicine created successfully")
}

// Update handles PUT /api/medicines/:id.
func (h *MedicineHandler) Update(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateMedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateMedicineInput{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Description:          req.Description,
		Manufacturer:         req.Manufacturer,
		Price:                req.Price,
		Stock:                req.Stock,
		Image:                req.Image,
		RequiresPrescription: req.RequiresPrescription,
	}
	if req.Status != nil {
		status := entity.MedicineStatus(*req.Status)
		input.Status = &status
	}
	if req.CategoryID != nil {
		categoryID := uuid.MustParse(*req.CategoryID)
		input.CategoryID = &categoryID
	}

	medicine, err := h.medicineUC.Update(c.Request().Context(), principal, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, medicine, "Medicine updated successfully")
}

// Delete handles DELETE /api/medicines/:id.
func (h *MedicineHandler) Delete(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.medicineUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine deleted successfully")
}

package handler

import (
	"net/http"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReviewHandler serves medicine reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// CreateReviewRequest represents the body of POST /api/reviews.
// The rating range is enforced by the review service.
type CreateReviewRequest struct {
	MedicineID string `json:"medicineId" validate:"required,uuid"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment" validate:"max=2000"`
}

// UpdateReviewRequest represents the body of PUT /api/reviews/:id.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment" validate:"omitnil,max=2000"`
}

// ListByMedicine handles GET /api/reviews/medicine/:medicineId.
func (h *ReviewHandler) ListByMedicine(c echo.Context) error {
	medicineID, err := pathUUID(c, "medicineId")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListByMedicine(c.Request().Context(), medicineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews)
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), principal, &usecase.CreateReviewInput{
		MedicineID: uuid.MustParse(req.MedicineID),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, review, "Review created successfully")
}

// Update handles PUT /api/reviews/:id.
func (h *ReviewHandler) Update(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Update(c.Request().Context(), principal, id, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, review, "Review updated successfully")
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

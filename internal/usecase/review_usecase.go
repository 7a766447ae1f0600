package usecase

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines a review of a medicine by the calling user.
type CreateReviewInput struct {
	MedicineID uuid.UUID
	Rating     int
	Comment    string
}

// UpdateReviewInput holds the fields to change; nil fields are left as they are.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*entity.Review, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateReviewInput) (*entity.Review, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}

package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// ListByMedicine returns the reviews of a medicine, most recent first.
	ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*entity.Review, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Exists reports whether userID already reviewed medicineID.
	Exists(ctx context.Context, userID, medicineID uuid.UUID) (bool, error)

	// Create persists a review. A duplicate (user, medicine) pair yields ErrReviewAlreadyExists.
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerApplicationRepository defines persistence operations for seller applications.
type SellerApplicationRepository interface {
	Create(ctx context.Context, app *entity.SellerApplication) error

	// FindByID retrieves an application with its applicant preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error)

	// FindLatestByUserID retrieves the most recent application of a user.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerApplication, error)

	// HasPending reports whether the user has an application awaiting review.
	HasPending(ctx context.Context, userID uuid.UUID) (bool, error)

	// List returns one page of applications, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.ApplicationStatus, page, limit int) ([]*entity.SellerApplication, int64, error)

	// UpdateReview writes status, reviewer and review time of a pending application.
	// An application that is no longer pending yields ErrConflict.
	UpdateReview(ctx context.Context, app *entity.SellerApplication) error
}

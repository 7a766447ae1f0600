package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicineRepository defines persistence operations for medicines.
type MedicineRepository interface {
	// List returns one page of medicines matching the filter and the total number of matches.
	// The category is preloaded on every item.
	List(ctx context.Context, filter entity.MedicineFilter) ([]*entity.Medicine, int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Medicine, error)

	// SlugExists reports whether a medicine other than excludeID uses slug.
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	Create(ctx context.Context, medicine *entity.Medicine) error
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error

	// HasOrderItems reports whether any order line references the medicine.
	HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error)

	// DecrementStock removes quantity units from stock only if enough are available.
	// It returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock returns quantity units to stock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

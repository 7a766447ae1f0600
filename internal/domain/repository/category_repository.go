package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// SlugExists reports whether a category other than excludeID uses slug.
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountMedicines returns how many medicines reference the category.
	CountMedicines(ctx context.Context, id uuid.UUID) (int64, error)
}

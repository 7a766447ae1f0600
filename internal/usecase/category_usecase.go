package usecase

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines a new category. An empty slug is derived from the name.
type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

// UpdateCategoryInput holds the fields to change; nil fields are left as they are.
type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// CategoryUsecase defines the category catalogue operations.
type CategoryUsecase interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

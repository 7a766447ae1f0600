package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, entity.Slugify(slug))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.Validation("Category name is required")
	}

	slug := entity.Slugify(input.Slug)
	if slug == "" {
		slug = entity.Slugify(name)
	}
	if slug == "" {
		return nil, domainerrors.Validation("Category slug is required")
	}

	if err := srv.ensureSlugFree(ctx, slug, nil); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("category_id", category.ID.String()), slog.String("slug", slug))

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.Validation("Category name cannot be empty")
		}
		category.Name = name
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	if input.Slug != nil {
		slug := entity.Slugify(*input.Slug)
		if slug == "" {
			return nil, domainerrors.Validation("Category slug cannot be empty")
		}
		// Keeping the current slug is not a collision.
		if err := srv.ensureSlugFree(ctx, slug, &id); err != nil {
			return nil, err
		}
		category.Slug = slug
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to find category")
	}

	dependents, err := srv.categoryRepo.CountMedicines(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count category medicines")
	}
	if dependents > 0 {
		return errors.WithStack(domainerrors.ErrCategoryHasDependents)
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("category_id", id.String()))

	return nil
}

func (srv *categoryService) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	exists, err := srv.categoryRepo.SlugExists(ctx, entity.Slugify(slug), excludeID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check category slug")
	}

	return exists, nil
}

func (srv *categoryService) ensureSlugFree(ctx context.Context, slug string, excludeID *uuid.UUID) error {
	exists, err := srv.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errors.WithStack(domainerrors.ErrCategorySlugTaken)
	}

	return nil
}

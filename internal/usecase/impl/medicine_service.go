package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/domain/service"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxSearchHits bounds the candidate set pulled from the search index before SQL filtering.
const maxSearchHits = 500

type medicineService struct {
	medicineRepo repository.MedicineRepository
	categoryRepo repository.CategoryRepository
	index        service.MedicineIndex
	logger       *slog.Logger
}

// MedicineServiceParams holds dependencies for MedicineService, injected by Fx.
type MedicineServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	CategoryRepo repository.CategoryRepository
	Index        service.MedicineIndex
	Logger       *slog.Logger
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(params MedicineServiceParams) usecase.MedicineUsecase {
	return &medicineService{
		medicineRepo: params.MedicineRepo,
		categoryRepo: params.CategoryRepo,
		index:        params.Index,
		logger:       params.Logger,
	}
}

func (srv *medicineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the public catalogue: active medicines only.
func (srv *medicineService) List(ctx context.Context, input *usecase.ListMedicinesInput) (*entity.Page[*entity.Medicine], error) {
	if input.MinPrice != nil && input.MaxPrice != nil && input.MinPrice.GreaterThan(*input.MaxPrice) {
		return nil, domainerrors.Validation("minPrice cannot be greater than maxPrice")
	}

	page, limit := entity.NormalizePage(input.Page, input.Limit)
	active := entity.MedicineStatusActive
	filter := entity.MedicineFilter{
		Search:       strings.TrimSpace(input.Search),
		CategorySlug: entity.Slugify(input.CategorySlug),
		SellerID:     input.SellerID,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		Status:       &active,
		Sort:         input.Sort,
		Page:         page,
		Limit:        limit,
	}

	if filter.Search != "" {
		filter.IDs = srv.searchIndex(ctx, filter.Search)
	}

	medicines, total, err := srv.medicineRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicines")
	}

	return entity.NewPage(medicines, page, limit, total), nil
}

// searchIndex returns the index hits for query, or nil to let the SQL search run instead.
func (srv *medicineService) searchIndex(ctx context.Context, query string) []uuid.UUID {
	ids, err := srv.index.Search(ctx, query, maxSearchHits)
	if err != nil {
		// A disabled index reports the bare sentinel; anything else is a cluster failure.
		if err != service.ErrSearchUnavailable { //nolint:errorlint
			srv.log(ctx).Warn("Medicine search index failed, falling back to SQL", slog.Any("error", err))
		}

		return nil
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids
}

func (srv *medicineService) GetBySlug(ctx context.Context, slug string) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get medicine")
	}
	if medicine.Status != entity.MedicineStatusActive {
		return nil, errors.WithStack(domainerrors.ErrMedicineNotFound)
	}

	return medicine, nil
}

// ListBySeller returns the caller's own listings in every status.
func (srv *medicineService) ListBySeller(
	ctx context.Context,
	principal *entity.Principal,
	page, limit int,
) (*entity.Page[*entity.Medicine], error) {
	page, limit = entity.NormalizePage(page, limit)
	sellerID := principal.ID

	medicines, total, err := srv.medicineRepo.List(ctx, entity.MedicineFilter{
		SellerID: &sellerID,
		Sort:     entity.MedicineSortNewest,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller medicines")
	}

	return entity.NewPage(medicines, page, limit, total), nil
}

func (srv *medicineService) Create(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.CreateMedicineInput,
) (*entity.Medicine, error) {
	medicine := &entity.Medicine{
		Name:                 strings.TrimSpace(input.Name),
		Slug:                 entity.Slugify(input.Slug),
		Description:          strings.TrimSpace(input.Description),
		Manufacturer:         strings.TrimSpace(input.Manufacturer),
		Price:                input.Price,
		Stock:                input.Stock,
		Image:                strings.TrimSpace(input.Image),
		RequiresPrescription: input.RequiresPrescription,
		Status:               input.Status,
		CategoryID:           input.CategoryID,
		SellerID:             principal.ID,
	}
	if medicine.Slug == "" {
		medicine.Slug = entity.Slugify(medicine.Name)
	}
	if medicine.Status == "" {
		medicine.Status = entity.MedicineStatusActive
	}

	if err := srv.validate(ctx, medicine, nil); err != nil {
		return nil, err
	}

	if err := srv.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to create medicine")
	}

	srv.log(ctx).Info("Medicine created",
		slog.String("medicine_id", medicine.ID.String()),
		slog.String("seller_id", principal.ID.String()),
	)
	srv.reindex(ctx, medicine)

	return medicine, nil
}

func (srv *medicineService) Update(
	ctx context.Context,
	principal *entity.Principal,
	id uuid.UUID,
	input *usecase.UpdateMedicineInput,
) (*entity.Medicine, error) {
	medicine, err := srv.findOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	applyMedicineUpdate(medicine, input)

	if err := srv.validate(ctx, medicine, &id); err != nil {
		return nil, err
	}

	if err := srv.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, errors.Wrap(err, "failed to update medicine")
	}

	srv.reindex(ctx, medicine)

	return medicine, nil
}

func applyMedicineUpdate(medicine *entity.Medicine, input *usecase.UpdateMedicineInput) {
	if input.Name != nil {
		medicine.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		medicine.Slug = entity.Slugify(*input.Slug)
	}
	if input.Description != nil {
		medicine.Description = strings.TrimSpace(*input.Description)
	}
	if input.Manufacturer != nil {
		medicine.Manufacturer = strings.TrimSpace(*input.Manufacturer)
	}
	if input.Price != nil {
		medicine.Price = *input.Price
	}
	if input.Stock != nil {
		medicine.Stock = *input.Stock
	}
	if input.Image != nil {
		medicine.Image = strings.TrimSpace(*input.Image)
	}
	if input.RequiresPrescription != nil {
		medicine.RequiresPrescription = *input.RequiresPrescription
	}
	if input.Status != nil {
		medicine.Status = *input.Status
	}
	if input.CategoryID != nil && *input.CategoryID != medicine.CategoryID {
		medicine.CategoryID = *input.CategoryID
		medicine.Category = nil
	}
}

func (srv *medicineService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, principal, id); err != nil {
		return err
	}

	ordered, err := srv.medicineRepo.HasOrderItems(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check medicine orders")
	}
	if ordered {
		return errors.WithStack(domainerrors.ErrMedicineHasOrders)
	}

	if err := srv.medicineRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete medicine")
	}

	if err := srv.index.Remove(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to remove medicine from search index",
			slog.String("medicine_id", id.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// findOwned loads a medicine the principal may modify: its seller or an admin.
func (srv *medicineService) findOwned(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medicine")
	}
	if !principal.IsAdmin() && !medicine.IsOwnedBy(principal.ID) {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("medicine belongs to another seller"))
	}

	return medicine, nil
}

func (srv *medicineService) validate(ctx context.Context, medicine *entity.Medicine, excludeID *uuid.UUID) error {
	switch {
	case medicine.Name == "":
		return domainerrors.Validation("Medicine name is required")
	case medicine.Slug == "":
		return domainerrors.Validation("Medicine slug is required")
	case !medicine.Price.GreaterThan(decimal.Zero):
		return domainerrors.Validation("Price must be greater than 0")
	case !medicine.Price.Equal(medicine.Price.Round(2)):
		return domainerrors.Validation("Price cannot have more than 2 decimal places")
	case medicine.Stock < 0:
		return domainerrors.Validation("Stock cannot be negative")
	case !medicine.Status.IsValid():
		return domainerrors.Validation("Invalid medicine status")
	case medicine.CategoryID == uuid.Nil:
		return domainerrors.Validation("Category is required")
	}

	if medicine.Category == nil {
		category, err := srv.categoryRepo.FindByID(ctx, medicine.CategoryID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrCategoryNotFound) {
				return domainerrors.Validation("Category does not exist")
			}

			return errors.Wrap(err, "failed to find category")
		}
		medicine.Category = category
	}

	exists, err := srv.medicineRepo.SlugExists(ctx, medicine.Slug, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check medicine slug")
	}
	if exists {
		return errors.WithStack(domainerrors.ErrMedicineSlugTaken)
	}

	return nil
}

func (srv *medicineService) reindex(ctx context.Context, medicine *entity.Medicine) {
	if err := srv.index.Index(ctx, medicine); err != nil {
		srv.log(ctx).Warn("Failed to index medicine",
			slog.String("medicine_id", medicine.ID.String()),
			slog.Any("error", err),
		)
	}
}

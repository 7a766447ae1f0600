package impl

import (
	"context"
	"testing"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/service"
	mockRepo "zenvira/internal/mocks/repository"
	mockSvc "zenvira/internal/mocks/service"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type medicineServiceFixtures struct {
	service      usecase.MedicineUsecase
	medicineRepo *mockRepo.MockMedicineRepository
	categoryRepo *mockRepo.MockCategoryRepository
	index        *mockSvc.MockMedicineIndex
}

func createTestMedicineService(t *testing.T) medicineServiceFixtures {
	fx := medicineServiceFixtures{
		medicineRepo: mockRepo.NewMockMedicineRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		index:        mockSvc.NewMockMedicineIndex(t),
	}
	fx.service = NewMedicineService(MedicineServiceParams{
		MedicineRepo: fx.medicineRepo,
		CategoryRepo: fx.categoryRepo,
		Index:        fx.index,
		Logger:       discardLogger(),
	})

	return fx
}

func TestMedicineService_List_OnlyActive(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.On("List", ctx, mock.MatchedBy(func(f entity.MedicineFilter) bool {
		return f.Status != nil && *f.Status == entity.MedicineStatusActive &&
			f.CategorySlug == "vitamins" && f.IDs == nil && f.Page == 2 && f.Limit == 10
	})).Return([]*entity.Medicine{{Name: "Zinc"}}, int64(11), nil)

	page, err := fx.service.List(ctx, &usecase.ListMedicinesInput{CategorySlug: "Vitamins", Page: 2})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestMedicineService_List_UsesSearchIndex(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()
	hit := uuid.New()

	fx.index.On("Search", ctx, "ibuprofen", maxSearchHits).Return([]uuid.UUID{hit}, nil)
	fx.medicineRepo.On("List", ctx, mock.MatchedBy(func(f entity.MedicineFilter) bool {
		return len(f.IDs) == 1 && f.IDs[0] == hit
	})).Return([]*entity.Medicine{}, int64(0), nil)

	_, err := fx.service.List(ctx, &usecase.ListMedicinesInput{Search: " ibuprofen "})

	require.NoError(t, err)
}

func TestMedicineService_List_NoIndexHitsMatchesNothing(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.index.On("Search", ctx, "zzz", maxSearchHits).Return(nil, nil)
	fx.medicineRepo.On("List", ctx, mock.MatchedBy(func(f entity.MedicineFilter) bool {
		return f.IDs != nil && len(f.IDs) == 0
	})).Return(nil, int64(0), nil)

	page, err := fx.service.List(ctx, &usecase.ListMedicinesInput{Search: "zzz"})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
}

func TestMedicineService_List_FallsBackToSQL(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.index.On("Search", ctx, "aspirin", maxSearchHits).
		Return(nil, errors.Wrap(service.ErrSearchUnavailable, "connection refused"))
	fx.medicineRepo.On("List", ctx, mock.MatchedBy(func(f entity.MedicineFilter) bool {
		return f.IDs == nil && f.Search == "aspirin"
	})).Return([]*entity.Medicine{}, int64(0), nil)

	_, err := fx.service.List(ctx, &usecase.ListMedicinesInput{Search: "aspirin"})

	require.NoError(t, err)
}

func TestMedicineService_List_InvalidPriceRange(t *testing.T) {
	fx := createTestMedicineService(t)
	low, high := decimal.NewFromInt(10), decimal.NewFromInt(5)

	_, err := fx.service.List(context.Background(), &usecase.ListMedicinesInput{MinPrice: &low, MaxPrice: &high})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMedicineService_GetBySlug_HidesInactive(t *testing.T) {
	fx := createTestMedicineService(t)
	ctx := context.Background()

	fx.medicineRepo.On("FindBySlug", ctx, "paracetamol").
		Return(&entity.Medicine{Slug: "paracetamol", Status: entity.MedicineStatusInactive}, nil)

	_, err := fx.service.GetBySlug(ctx, "paracetamol")

	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestMedicineService_Create(t *testing.T) {
	ctx := context.Background()
	seller := &entity.Principal{ID: uuid.New(), Role: entity.RoleSeller}
	categoryID := uuid.New()
	validInput := func() *usecase.CreateMedicineInput {
		return &usecase.CreateMedicineInput{
			Name:       "Paracetamol 500mg",
			Price:      decimal.RequireFromString("4.50"),
			Stock:      20,
			CategoryID: categoryID,
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestMedicineService(t)

		fx.categoryRepo.On("FindByID", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.medicineRepo.On("SlugExists", ctx, "paracetamol-500mg", (*uuid.UUID)(nil)).Return(false, nil)
		fx.medicineRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.Medicine) bool {
			return m.SellerID == seller.ID && m.Status == entity.MedicineStatusActive
		})).Return(nil)
		fx.index.On("Index", ctx, mock.AnythingOfType("*entity.Medicine")).Return(nil)

		medicine, err := fx.service.Create(ctx, seller, validInput())

		require.NoError(t, err)
		assert.Equal(t, "paracetamol-500mg", medicine.Slug)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestMedicineService(t)

		fx.categoryRepo.On("FindByID", ctx, categoryID).Return(nil, domainerrors.ErrCategoryNotFound)

		_, err := fx.service.Create(ctx, seller, validInput())

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("non-positive price", func(t *testing.T) {
		fx := createTestMedicineService(t)
		input := validInput()
		input.Price = decimal.Zero

		_, err := fx.service.Create(ctx, seller, input)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("sub-cent price", func(t *testing.T) {
		for _, price := range []string{"10.005", "0.001"} {
			fx := createTestMedicineService(t)
			input := validInput()
			input.Price = decimal.RequireFromString(price)

			_, err := fx.service.Create(ctx, seller, input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), price)
		}
	})

	t.Run("slug taken", func(t *testing.T) {
		fx := createTestMedicineService(t)

		fx.categoryRepo.On("FindByID", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.medicineRepo.On("SlugExists", ctx, "paracetamol-500mg", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := fx.service.Create(ctx, seller, validInput())

		assert.True(t, errors.Is(err, domainerrors.ErrMedicineSlugTaken))
	})

	t.Run("index failure is not fatal", func(t *testing.T) {
		fx := createTestMedicineService(t)

		fx.categoryRepo.On("FindByID", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.medicineRepo.On("SlugExists", ctx, "paracetamol-500mg", (*uuid.UUID)(nil)).Return(false, nil)
		fx.medicineRepo.On("Create", ctx, mock.Anything).Return(nil)
		fx.index.On("Index", ctx, mock.Anything).Return(errors.New("cluster down"))

		_, err := fx.service.Create(ctx, seller, validInput())

		require.NoError(t, err)
	})
}

func TestMedicineService_Update_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()
	category := &entity.Category{ID: uuid.New()}
	existing := func() *entity.Medicine {
		return &entity.Medicine{
			ID:         id,
			Name:       "Zinc",
			Slug:       "zinc",
			Price:      decimal.NewFromInt(3),
			Status:     entity.MedicineStatusActive,
			CategoryID: category.ID,
			Category:   category,
			SellerID:   owner,
		}
	}
	stock := 5

	t.Run("other seller is forbidden", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.On("FindByID", ctx, id).Return(existing(), nil)

		_, err := fx.service.Update(ctx, &entity.Principal{ID: uuid.New(), Role: entity.RoleSeller}, id,
			&usecase.UpdateMedicineInput{Stock: &stock})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin may edit", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.On("FindByID", ctx, id).Return(existing(), nil)
		fx.medicineRepo.On("SlugExists", ctx, "zinc", &id).Return(false, nil)
		fx.medicineRepo.On("Update", ctx, mock.AnythingOfType("*entity.Medicine")).Return(nil)
		fx.index.On("Index", ctx, mock.Anything).Return(nil)

		medicine, err := fx.service.Update(ctx, &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}, id,
			&usecase.UpdateMedicineInput{Stock: &stock})

		require.NoError(t, err)
		assert.Equal(t, 5, medicine.Stock)
		assert.Equal(t, owner, medicine.SellerID)
	})
}

func TestMedicineService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := &entity.Principal{ID: uuid.New(), Role: entity.RoleSeller}
	id := uuid.New()

	t.Run("ordered medicine", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.On("FindByID", ctx, id).Return(&entity.Medicine{ID: id, SellerID: owner.ID}, nil)
		fx.medicineRepo.On("HasOrderItems", ctx, id).Return(true, nil)

		err := fx.service.Delete(ctx, owner, id)

		assert.True(t, errors.Is(err, domainerrors.ErrMedicineHasOrders))
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestMedicineService(t)
		fx.medicineRepo.On("FindByID", ctx, id).Return(&entity.Medicine{ID: id, SellerID: owner.ID}, nil)
		fx.medicineRepo.On("HasOrderItems", ctx, id).Return(false, nil)
		fx.medicineRepo.On("Delete", ctx, id).Return(nil)
		fx.index.On("Remove", ctx, id).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, owner, id))
	})
}

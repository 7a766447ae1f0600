package impl

import (
	"context"
	"net/http"
	"testing"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	mockRepo "zenvira/internal/mocks/repository"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	reviewRepo   *mockRepo.MockReviewRepository
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		medicineRepo: mockRepo.NewMockMedicineRepository(t),
	}
	fx.service = NewReviewService(fx.reviewRepo, fx.medicineRepo, discardLogger())

	return fx
}

func TestReviewService_Create_RatingBounds(t *testing.T) {
	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Name: "Ana", Role: entity.RoleCustomer}
	medicineID := uuid.New()

	for _, rating := range []int{0, 6, -1} {
		fx := createTestReviewService(t)

		_, err := fx.service.Create(ctx, principal, &usecase.CreateReviewInput{MedicineID: medicineID, Rating: rating})

		require.Error(t, err, "rating %d", rating)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
		assert.Equal(t, http.StatusBadRequest, domainerrors.HTTPStatus(err))
	}

	for rating := entity.MinRating; rating <= entity.MaxRating; rating++ {
		fx := createTestReviewService(t)
		fx.medicineRepo.On("FindByID", ctx, medicineID).Return(&entity.Medicine{ID: medicineID}, nil)
		fx.reviewRepo.On("Exists", ctx, principal.ID, medicineID).Return(false, nil)
		fx.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := fx.service.Create(ctx, principal, &usecase.CreateReviewInput{MedicineID: medicineID, Rating: rating})

		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, review.Rating)
		assert.Equal(t, "Ana", review.UserName)
	}
}

func TestReviewService_Create_UnknownMedicine(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	medicineID := uuid.New()

	fx.medicineRepo.On("FindByID", ctx, medicineID).Return(nil, domainerrors.ErrMedicineNotFound)

	_, err := fx.service.Create(ctx, &entity.Principal{ID: uuid.New()}, &usecase.CreateReviewInput{MedicineID: medicineID, Rating: 4})

	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
	assert.Equal(t, http.StatusNotFound, domainerrors.HTTPStatus(err))
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New()}
	medicineID := uuid.New()

	fx.medicineRepo.On("FindByID", ctx, medicineID).Return(&entity.Medicine{ID: medicineID}, nil)
	fx.reviewRepo.On("Exists", ctx, principal.ID, medicineID).Return(true, nil)

	_, err := fx.service.Create(ctx, principal, &usecase.CreateReviewInput{MedicineID: medicineID, Rating: 5})

	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
	assert.Equal(t, http.StatusConflict, domainerrors.HTTPStatus(err))
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	id := uuid.New()
	existing := func() *entity.Review {
		return &entity.Review{ID: id, UserID: author, Rating: 3, Comment: "ok"}
	}

	t.Run("author", func(t *testing.T) {
		fx := createTestReviewService(t)
		rating := 5
		fx.reviewRepo.On("FindByID", ctx, id).Return(existing(), nil)
		fx.reviewRepo.On("Update", ctx, mock.MatchedBy(func(r *entity.Review) bool { return r.Rating == 5 })).Return(nil)

		review, err := fx.service.Update(ctx, &entity.Principal{ID: author, Role: entity.RoleCustomer}, id,
			&usecase.UpdateReviewInput{Rating: &rating})

		require.NoError(t, err)
		assert.Equal(t, "ok", review.Comment)
	})

	t.Run("invalid rating", func(t *testing.T) {
		fx := createTestReviewService(t)
		rating := 6
		fx.reviewRepo.On("FindByID", ctx, id).Return(existing(), nil)

		_, err := fx.service.Update(ctx, &entity.Principal{ID: author}, id, &usecase.UpdateReviewInput{Rating: &rating})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestReviewService(t)
		comment := "spam"
		fx.reviewRepo.On("FindByID", ctx, id).Return(existing(), nil)

		_, err := fx.service.Update(ctx, &entity.Principal{ID: uuid.New(), Role: entity.RoleSeller}, id,
			&usecase.UpdateReviewInput{Comment: &comment})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing review", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.On("FindByID", ctx, id).Return(nil, domainerrors.ErrReviewNotFound)

		_, err := fx.service.Update(ctx, &entity.Principal{ID: author}, id, &usecase.UpdateReviewInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})
}

func TestReviewService_Delete_Admin(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.reviewRepo.On("FindByID", ctx, id).Return(&entity.Review{ID: id, UserID: uuid.New()}, nil)
	fx.reviewRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}, id))
}

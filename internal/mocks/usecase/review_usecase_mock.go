package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewUsecase is a testify mock of usecase.ReviewUsecase.
type MockReviewUsecase struct {
	mock.Mock
}

var _ usecase.ReviewUsecase = (*MockReviewUsecase)(nil)

// NewMockReviewUsecase creates a mock that asserts its expectations when the test ends.
func NewMockReviewUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewUsecase {
	m := &MockReviewUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewUsecase) ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, medicineID)

	return get[[]*entity.Review](args, 0), args.Error(1)
}

func (m *MockReviewUsecase) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.Review](args, 0), args.Error(1)
}

func (m *MockReviewUsecase) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, principal, id, input)

	return get[*entity.Review](args, 0), args.Error(1)
}

func (m *MockReviewUsecase) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	args := m.Called(ctx, principal, id)

	return args.Error(0)
}

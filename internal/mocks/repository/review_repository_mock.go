package repository

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a testify mock of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

// NewMockReviewRepository creates a mock that asserts its expectations when the test ends.
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, medicineID)

	return get[[]*entity.Review](args, 0), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)

	return get[*entity.Review](args, 0), args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, userID uuid.UUID, medicineID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, medicineID)

	return get[bool](args, 0), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

package repository

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerApplicationRepository is a testify mock of repository.SellerApplicationRepository.
type MockSellerApplicationRepository struct {
	mock.Mock
}

var _ repository.SellerApplicationRepository = (*MockSellerApplicationRepository)(nil)

// NewMockSellerApplicationRepository creates a mock that asserts its expectations when the test ends.
func NewMockSellerApplicationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSellerApplicationRepository {
	m := &MockSellerApplicationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerApplicationRepository) Create(ctx context.Context, app *entity.SellerApplication) error {
	args := m.Called(ctx, app)

	return args.Error(0)
}

func (m *MockSellerApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error) {
	args := m.Called(ctx, id)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

func (m *MockSellerApplicationRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerApplication, error) {
	args := m.Called(ctx, userID)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

func (m *MockSellerApplicationRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)

	return get[bool](args, 0), args.Error(1)
}

func (m *MockSellerApplicationRepository) List(ctx context.Context, status *entity.ApplicationStatus, page int, limit int) ([]*entity.SellerApplication, int64, error) {
	args := m.Called(ctx, status, page, limit)

	return get[[]*entity.SellerApplication](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *MockSellerApplicationRepository) UpdateReview(ctx context.Context, app *entity.SellerApplication) error {
	args := m.Called(ctx, app)

	return args.Error(0)
}

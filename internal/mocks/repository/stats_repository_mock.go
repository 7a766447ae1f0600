package repository

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStatsRepository is a testify mock of repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

var _ repository.StatsRepository = (*MockStatsRepository)(nil)

// NewMockStatsRepository creates a mock that asserts its expectations when the test ends.
func NewMockStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsRepository {
	m := &MockStatsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStatsRepository) CountMedicinesBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, sellerID)

	return get[int64](args, 0), args.Error(1)
}

func (m *MockStatsRepository) SellerOrderLines(ctx context.Context, sellerID uuid.UUID) ([]entity.SellerOrderLine, error) {
	args := m.Called(ctx, sellerID)

	return get[[]entity.SellerOrderLine](args, 0), args.Error(1)
}

func (m *MockStatsRepository) SellerRatings(ctx context.Context, sellerID uuid.UUID) (entity.RatingSummary, error) {
	args := m.Called(ctx, sellerID)

	return get[entity.RatingSummary](args, 0), args.Error(1)
}

func (m *MockStatsRepository) CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error) {
	args := m.Called(ctx)

	return get[[]entity.RoleCount](args, 0), args.Error(1)
}

func (m *MockStatsRepository) CountMedicines(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return get[int64](args, 0), args.Error(1)
}

func (m *MockStatsRepository) OrdersByStatus(ctx context.Context) ([]entity.OrderStatusSummary, error) {
	args := m.Called(ctx)

	return get[[]entity.OrderStatusSummary](args, 0), args.Error(1)
}

func (m *MockStatsRepository) Ratings(ctx context.Context) (entity.RatingSummary, error) {
	args := m.Called(ctx)

	return get[entity.RatingSummary](args, 0), args.Error(1)
}

func (m *MockStatsRepository) CountPendingApplications(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return get[int64](args, 0), args.Error(1)
}

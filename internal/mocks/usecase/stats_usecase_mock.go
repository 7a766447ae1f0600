package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockStatsUsecase is a testify mock of usecase.StatsUsecase.
type MockStatsUsecase struct {
	mock.Mock
}

var _ usecase.StatsUsecase = (*MockStatsUsecase)(nil)

// NewMockStatsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockStatsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsUsecase {
	m := &MockStatsUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStatsUsecase) SellerStats(ctx context.Context, principal *entity.Principal, requestedSellerID string) (*entity.SellerStats, error) {
	args := m.Called(ctx, principal, requestedSellerID)

	return get[*entity.SellerStats](args, 0), args.Error(1)
}

func (m *MockStatsUsecase) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	args := m.Called(ctx)

	return get[*entity.AdminStats](args, 0), args.Error(1)
}

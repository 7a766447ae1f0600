package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderUsecase is a testify mock of usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

var _ usecase.OrderUsecase = (*MockOrderUsecase)(nil)

// NewMockOrderUsecase creates a mock that asserts its expectations when the test ends.
func NewMockOrderUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) Place(ctx context.Context, principal *entity.Principal, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) List(ctx context.Context, principal *entity.Principal, input *usecase.ListOrdersInput) (*entity.Page[*entity.Order], error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.Page[*entity.Order]](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) ListForSeller(ctx context.Context, principal *entity.Principal, input *usecase.ListOrdersInput) (*entity.Page[*entity.Order], error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.Page[*entity.Order]](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, principal, id)

	return get[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, principal *entity.Principal, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, principal, id, status)

	return get[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Order, error) {
	args := m.Called(ctx, id, status)

	return get[*entity.Order](args, 0), args.Error(1)
}

func (m *MockOrderUsecase) Cancel(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, principal, id)

	return get[*entity.Order](args, 0), args.Error(1)
}

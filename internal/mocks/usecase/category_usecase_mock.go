package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a testify mock of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

var _ usecase.CategoryUsecase = (*MockCategoryUsecase)(nil)

// NewMockCategoryUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCategoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUsecase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	return get[[]*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)

	return get[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)

	return get[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)

	return get[*entity.Category](args, 0), args.Error(1)
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCategoryUsecase) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)

	return get[bool](args, 0), args.Error(1)
}

package repository

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMedicineRepository is a testify mock of repository.MedicineRepository.
type MockMedicineRepository struct {
	mock.Mock
}

var _ repository.MedicineRepository = (*MockMedicineRepository)(nil)

// NewMockMedicineRepository creates a mock that asserts its expectations when the test ends.
func NewMockMedicineRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMedicineRepository {
	m := &MockMedicineRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMedicineRepository) List(ctx context.Context, filter entity.MedicineFilter) ([]*entity.Medicine, int64, error) {
	args := m.Called(ctx, filter)

	return get[[]*entity.Medicine](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	args := m.Called(ctx, id)

	return get[*entity.Medicine](args, 0), args.Error(1)
}

func (m *MockMedicineRepository) FindBySlug(ctx context.Context, slug string) (*entity.Medicine, error) {
	args := m.Called(ctx, slug)

	return get[*entity.Medicine](args, 0), args.Error(1)
}

func (m *MockMedicineRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludeID)

	return get[bool](args, 0), args.Error(1)
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	args := m.Called(ctx, medicine)

	return args.Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	args := m.Called(ctx, medicine)

	return args.Error(0)
}

func (m *MockMedicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockMedicineRepository) HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return get[bool](args, 0), args.Error(1)
}

func (m *MockMedicineRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

func (m *MockMedicineRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

package service

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMedicineIndex is a testify mock of service.MedicineIndex.
type MockMedicineIndex struct {
	mock.Mock
}

var _ service.MedicineIndex = (*MockMedicineIndex)(nil)

// NewMockMedicineIndex creates a mock that asserts its expectations when the test ends.
func NewMockMedicineIndex(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMedicineIndex {
	m := &MockMedicineIndex{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMedicineIndex) Index(ctx context.Context, medicine *entity.Medicine) error {
	args := m.Called(ctx, medicine)

	return args.Error(0)
}

func (m *MockMedicineIndex) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockMedicineIndex) Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, query, limit)

	return get[[]uuid.UUID](args, 0), args.Error(1)
}

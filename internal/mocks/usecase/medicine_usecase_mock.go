package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMedicineUsecase is a testify mock of usecase.MedicineUsecase.
type MockMedicineUsecase struct {
	mock.Mock
}

var _ usecase.MedicineUsecase = (*MockMedicineUsecase)(nil)

// NewMockMedicineUsecase creates a mock that asserts its expectations when the test ends.
func NewMockMedicineUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMedicineUsecase {
	m := &MockMedicineUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMedicineUsecase) List(ctx context.Context, input *usecase.ListMedicinesInput) (*entity.Page[*entity.Medicine], error) {
	args := m.Called(ctx, input)

	return get[*entity.Page[*entity.Medicine]](args, 0), args.Error(1)
}

func (m *MockMedicineUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Medicine, error) {
	args := m.Called(ctx, slug)

	return get[*entity.Medicine](args, 0), args.Error(1)
}

func (m *MockMedicineUsecase) ListBySeller(ctx context.Context, principal *entity.Principal, page int, limit int) (*entity.Page[*entity.Medicine], error) {
	args := m.Called(ctx, principal, page, limit)

	return get[*entity.Page[*entity.Medicine]](args, 0), args.Error(1)
}

func (m *MockMedicineUsecase) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateMedicineInput) (*entity.Medicine, error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.Medicine](args, 0), args.Error(1)
}

func (m *MockMedicineUsecase) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateMedicineInput) (*entity.Medicine, error) {
	args := m.Called(ctx, principal, id, input)

	return get[*entity.Medicine](args, 0), args.Error(1)
}

func (m *MockMedicineUsecase) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	args := m.Called(ctx, principal, id)

	return args.Error(0)
}

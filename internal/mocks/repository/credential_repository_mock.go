package repository

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a testify mock of repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

var _ repository.CredentialRepository = (*MockCredentialRepository)(nil)

// NewMockCredentialRepository creates a mock that asserts its expectations when the test ends.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	args := m.Called(ctx, credential)

	return args.Error(0)
}

func (m *MockCredentialRepository) FindByProvider(ctx context.Context, provider string, providerUserID string) (*entity.Credential, error) {
	args := m.Called(ctx, provider, providerUserID)

	return get[*entity.Credential](args, 0), args.Error(1)
}

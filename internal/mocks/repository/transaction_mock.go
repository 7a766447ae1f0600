package repository

import (
	"context"

	"zenvira/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
// Returning a repository.RepositoryFactory from the expectation runs the callback
// against it; returning an error fails the transaction without calling back.
type MockTransactionManager struct {
	mock.Mock
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// NewMockTransactionManager creates a mock that asserts its expectations when the test ends.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

// RepositoryFactory hands out the mocks it holds. Nil fields panic when used,
// which flags a transaction touching a repository the test did not expect.
type RepositoryFactory struct {
	Users              *MockUserRepository
	Credentials        *MockCredentialRepository
	RefreshTokens      *MockRefreshTokenRepository
	Categories         *MockCategoryRepository
	Medicines          *MockMedicineRepository
	Reviews            *MockReviewRepository
	Orders             *MockOrderRepository
	SellerApplications *MockSellerApplicationRepository
}

var _ repository.RepositoryFactory = (*RepositoryFactory)(nil)

func (f *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return must(f.Users)
}

func (f *RepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return must(f.Credentials)
}

func (f *RepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return must(f.RefreshTokens)
}

func (f *RepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return must(f.Categories)
}

func (f *RepositoryFactory) NewMedicineRepository() repository.MedicineRepository {
	return must(f.Medicines)
}

func (f *RepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return must(f.Reviews)
}

func (f *RepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return must(f.Orders)
}

func (f *RepositoryFactory) NewSellerApplicationRepository() repository.SellerApplicationRepository {
	return must(f.SellerApplications)
}

func must[T any](repo *T) *T {
	if repo == nil {
		panic("mock repository factory: repository not configured")
	}

	return repo
}

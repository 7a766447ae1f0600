package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)

// NewMockUserUsecase creates a mock that asserts its expectations when the test ends.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) GetMe(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	args := m.Called(ctx, principal)

	return get[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateMe(ctx context.Context, principal *entity.Principal, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) List(ctx context.Context, input *usecase.ListUsersInput) (*entity.Page[*entity.User], error) {
	args := m.Called(ctx, input)

	return get[*entity.Page[*entity.User]](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateRole(ctx context.Context, actor *entity.Principal, id uuid.UUID, role entity.Role) (*entity.User, error) {
	args := m.Called(ctx, actor, id, role)

	return get[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateStatus(ctx context.Context, actor *entity.Principal, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	args := m.Called(ctx, actor, id, status)

	return get[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserUsecase) ApplySeller(ctx context.Context, principal *entity.Principal, input *usecase.ApplySellerInput) (*entity.SellerApplication, error) {
	args := m.Called(ctx, principal, input)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetMyApplication(ctx context.Context, principal *entity.Principal) (*entity.SellerApplication, error) {
	args := m.Called(ctx, principal)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

func (m *MockUserUsecase) ListSellerApplications(ctx context.Context, input *usecase.ListApplicationsInput) (*entity.Page[*entity.SellerApplication], error) {
	args := m.Called(ctx, input)

	return get[*entity.Page[*entity.SellerApplication]](args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetSellerApplication(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error) {
	args := m.Called(ctx, id)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateSellerApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus, reviewerID uuid.UUID) (*entity.SellerApplication, error) {
	args := m.Called(ctx, id, status, reviewerID)

	return get[*entity.SellerApplication](args, 0), args.Error(1)
}

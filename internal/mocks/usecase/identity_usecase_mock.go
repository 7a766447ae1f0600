package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
	"zenvira/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockIdentityUsecase is a testify mock of usecase.IdentityUsecase.
type MockIdentityUsecase struct {
	mock.Mock
}

var _ usecase.IdentityUsecase = (*MockIdentityUsecase)(nil)

// NewMockIdentityUsecase creates a mock that asserts its expectations when the test ends.
func NewMockIdentityUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityUsecase {
	m := &MockIdentityUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	return get[*usecase.AuthOutput](args, 0), args.Error(1)
}

func (m *MockIdentityUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	return get[*usecase.AuthOutput](args, 0), args.Error(1)
}

func (m *MockIdentityUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, refreshToken)

	return get[*usecase.AuthOutput](args, 0), args.Error(1)
}

func (m *MockIdentityUsecase) SignOut(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)

	return args.Error(0)
}

func (m *MockIdentityUsecase) ResolveSession(ctx context.Context, accessToken string) (*entity.Principal, error) {
	args := m.Called(ctx, accessToken)

	return get[*entity.Principal](args, 0), args.Error(1)
}

func (m *MockIdentityUsecase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return get[int64](args, 0), args.Error(1)
}

package service

import (
	"time"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return get[string](args, 0), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken() (string, string, error) {
	args := m.Called()

	return get[string](args, 0), get[string](args, 1), args.Error(2)
}

func (m *MockTokenService) HashRefreshToken(token string) string {
	args := m.Called(token)

	return get[string](args, 0)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	return get[*service.Claims](args, 0), args.Error(1)
}

func (m *MockTokenService) GetAccessTokenDuration() time.Duration {
	args := m.Called()

	return get[time.Duration](args, 0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return get[time.Duration](args, 0)
}

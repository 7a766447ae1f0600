package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"zenvira/config"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/service"
	mockRepo "zenvira/internal/mocks/repository"
	mockSvc "zenvira/internal/mocks/service"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service          *identityService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	credentialRepo   *mockRepo.MockCredentialRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	publisher        *mockSvc.MockEventPublisher
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	fx := identityServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		credentialRepo:   mockRepo.NewMockCredentialRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	srv := NewIdentityService(IdentityServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		CredentialRepo:   fx.credentialRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Publisher:        fx.publisher,
		Config:           &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 8}},
		Logger:           discardLogger(),
	}).(*identityService)
	srv.now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

func (fx identityServiceFixtures) expectSession(ctx context.Context, user *entity.User) {
	fx.tokenService.On("GenerateAccessToken", user.ID, user.Role).Return("access-token", nil).Once()
	fx.tokenService.On("GenerateRefreshToken").Return("refresh-token", "refresh-hash", nil).Once()
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour).Once()
	fx.tokenService.On("GetAccessTokenDuration").Return(15 * time.Minute).Once()
	fx.refreshTokenRepo.On("Create", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == user.ID &&
			token.TokenHash == "refresh-hash" &&
			token.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour))
	})).Return(nil).Once()
}

func TestIdentityService_SignUp_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUsers := mockRepo.NewMockUserRepository(t)
	txCredentials := mockRepo.NewMockCredentialRepository(t)
	factory := &mockRepo.RepositoryFactory{Users: txUsers, Credentials: txCredentials}

	fx.hasher.On("Hash", "s3cretpass").Return("hashed", nil)
	fx.txManager.On("Execute", ctx, mock.Anything).Return(factory)
	txUsers.On("FindByEmail", ctx, "ana@example.com").Return(nil, domainerrors.ErrUserNotFound)

	createdID := uuid.New()
	txUsers.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ana@example.com" && u.Name == "Ana" &&
			u.Role == entity.RoleCustomer && u.Status == entity.UserStatusActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = createdID
	}).Return(nil)
	txCredentials.On("Create", ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.UserID == createdID &&
			c.Provider == entity.ProviderTypeEmail &&
			c.ProviderUserID == "ana@example.com" &&
			c.PasswordHash == "hashed"
	})).Return(nil)

	fx.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
		return e.Type == constants.EventUserRegistered && e.AggregateID == createdID.String()
	})).Return(nil)

	fx.tokenService.On("GenerateAccessToken", createdID, entity.RoleCustomer).Return("access-token", nil)
	fx.tokenService.On("GenerateRefreshToken").Return("refresh-token", "refresh-hash", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(time.Hour)
	fx.tokenService.On("GetAccessTokenDuration").Return(15 * time.Minute)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Name:     "  Ana ",
		Email:    " Ana@Example.com ",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.Equal(t, createdID, out.User.ID)
}

func TestIdentityService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	txUsers := mockRepo.NewMockUserRepository(t)
	factory := &mockRepo.RepositoryFactory{Users: txUsers}

	fx.hasher.On("Hash", "s3cretpass").Return("hashed", nil)
	fx.txManager.On("Execute", ctx, mock.Anything).Return(factory)
	txUsers.On("FindByEmail", ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "s3cretpass"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestIdentityService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SignUpInput
	}{
		{name: "missing name", input: usecase.SignUpInput{Email: "a@b.co", Password: "longenough"}},
		{name: "bad email", input: usecase.SignUpInput{Name: "A", Email: "not-an-email", Password: "longenough"}},
		{name: "short password", input: usecase.SignUpInput{Name: "A", Email: "a@b.co", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)

			_, err := fx.service.SignUp(context.Background(), &tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestIdentityService_SignIn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	credential := &entity.Credential{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestIdentityService(t)
		user := &entity.User{ID: userID, Role: entity.RoleSeller, Status: entity.UserStatusActive}

		fx.credentialRepo.On("FindByProvider", ctx, entity.ProviderTypeEmail, "ana@example.com").Return(credential, nil)
		fx.hasher.On("Check", "s3cretpass", "hashed").Return(true)
		fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
		fx.expectSession(ctx, user)

		out, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ANA@example.com", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestIdentityService(t)

		fx.credentialRepo.On("FindByProvider", ctx, entity.ProviderTypeEmail, "ana@example.com").Return(credential, nil)
		fx.hasher.On("Check", "nope", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ana@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("banned user", func(t *testing.T) {
		fx := createTestIdentityService(t)

		fx.credentialRepo.On("FindByProvider", ctx, entity.ProviderTypeEmail, "ana@example.com").Return(credential, nil)
		fx.hasher.On("Check", "s3cretpass", "hashed").Return(true)
		fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Status: entity.UserStatusBanned}, nil)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ana@example.com", Password: "s3cretpass"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserBanned))
	})
}

func TestIdentityService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer, Status: entity.UserStatusActive}

	fx.tokenService.On("HashRefreshToken", "old-token").Return("old-hash")
	fx.refreshTokenRepo.On("FindByHash", ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	fx.refreshTokenRepo.On("DeleteByHash", ctx, "old-hash").Return(true, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.expectSession(ctx, user)

	out, err := fx.service.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestIdentityService_Refresh_Expired(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.On("HashRefreshToken", "old-token").Return("old-hash")
	fx.refreshTokenRepo.On("FindByHash", ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: uuid.New(), ExpiresAt: fixedNow.Add(-time.Minute)}, nil)
	fx.refreshTokenRepo.On("DeleteByHash", ctx, "old-hash").Return(true, nil)

	_, err := fx.service.Refresh(ctx, "old-token")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestIdentityService_Refresh_ConcurrentRedeemIssuesOneSession(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer, Status: entity.UserStatusActive}

	// Both callers read the token before either deletes it.
	fx.tokenService.On("HashRefreshToken", "old-token").Return("old-hash")
	fx.refreshTokenRepo.On("FindByHash", ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash", ExpiresAt: fixedNow.Add(time.Hour)}, nil).Twice()
	fx.refreshTokenRepo.On("DeleteByHash", ctx, "old-hash").Return(true, nil).Once()
	fx.refreshTokenRepo.On("DeleteByHash", ctx, "old-hash").Return(false, nil).Once()
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	fx.expectSession(ctx, user)

	var (
		wg   sync.WaitGroup
		errs = make(chan error, 2)
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.Refresh(ctx, "old-token")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var issued, rejected int
	for err := range errs {
		switch {
		case err == nil:
			issued++
		case errors.Is(err, domainerrors.ErrSessionInvalid):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, issued)
	assert.Equal(t, 1, rejected)
}

func TestIdentityService_SignOut(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.SignOut(ctx, ""))

	fx.tokenService.On("HashRefreshToken", "token").Return("hash")
	fx.refreshTokenRepo.On("DeleteByHash", ctx, "hash").Return(false, nil)

	require.NoError(t, fx.service.SignOut(ctx, "token"))
}

func TestIdentityService_ResolveSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("reloads the user", func(t *testing.T) {
		fx := createTestIdentityService(t)
		user := &entity.User{ID: userID, Email: "a@b.co", Name: "A", Role: entity.RoleAdmin, Status: entity.UserStatusActive}

		fx.tokenService.On("ValidateAccessToken", "tok").Return(&service.Claims{UserID: userID, Role: entity.RoleCustomer}, nil)
		fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

		principal, err := fx.service.ResolveSession(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, principal.Role)
		assert.Equal(t, userID, principal.ID)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestIdentityService(t)

		fx.tokenService.On("ValidateAccessToken", "tok").Return(nil, domainerrors.ErrSessionInvalid)

		_, err := fx.service.ResolveSession(ctx, "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("banned user", func(t *testing.T) {
		fx := createTestIdentityService(t)

		fx.tokenService.On("ValidateAccessToken", "tok").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID, Status: entity.UserStatusBanned}, nil)

		_, err := fx.service.ResolveSession(ctx, "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}

func TestIdentityService_PurgeExpiredSessions(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.On("DeleteExpired", ctx, fixedNow).Return(int64(3), nil)

	removed, err := fx.service.PurgeExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"zenvira/config"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/domain/service"
	"zenvira/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	credentialRepo    repository.CredentialRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	publisher         service.EventPublisher
	minPasswordLength int
	logger            *slog.Logger
	now               func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	CredentialRepo   repository.CredentialRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	minPasswordLength := 8
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &identityService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		credentialRepo:    params.CredentialRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		publisher:         params.Publisher,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a customer account with an email credential and opens a session.
func (srv *identityService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, domainerrors.Validation("Name is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domainerrors.Validation("A valid email is required")
	}
	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.Validation("Password is too short")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:   name,
		Email:  email,
		Role:   entity.RoleCustomer,
		Status: entity.UserStatusActive,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(findErr, domainerrors.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		credential := &entity.Credential{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}
		if err := repoFactory.NewCredentialRepository().Create(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", user.ID.String()))

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventUserRegistered, user.ID.String(), map[string]any{
		"email": user.Email,
		"name":  user.Name,
	})

	return srv.issueSession(ctx, user)
}

// SignIn verifies an email/password pair and opens a session.
func (srv *identityService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	credential, err := srv.credentialRepo.FindByProvider(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential")
	}
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.Status == entity.UserStatusBanned {
		return nil, errors.WithStack(domainerrors.ErrUserBanned)
	}

	return srv.issueSession(ctx, user)
}

// Refresh rotates a refresh token: the presented token is consumed and a new pair is issued.
func (srv *identityService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	tokenHash := srv.tokenService.HashRefreshToken(refreshToken)
	stored, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	// Only the caller whose delete removed the row may use the token.
	consumed, err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume refresh token")
	}
	if !consumed {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid.WithDetails("refresh token already used"))
	}
	if stored.IsExpired(srv.now()) {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid.WithDetails("refresh token expired"))
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.Status == entity.UserStatusBanned {
		return nil, errors.WithStack(domainerrors.ErrUserBanned)
	}

	return srv.issueSession(ctx, user)
}

// SignOut revokes a refresh token. Unknown tokens are ignored.
func (srv *identityService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := srv.refreshTokenRepo.DeleteByHash(ctx, srv.tokenService.HashRefreshToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// ResolveSession turns an access token into the principal of the current request.
// The user is reloaded so a role change or a ban takes effect immediately.
func (srv *identityService) ResolveSession(ctx context.Context, accessToken string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("user no longer exists"))
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}
	if user.Status == entity.UserStatusBanned {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("user is banned"))
	}

	return entity.PrincipalFromUser(user), nil
}

// PurgeExpiredSessions deletes refresh tokens that are past their expiry.
func (srv *identityService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Purged expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}

func (srv *identityService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, refreshHash, err := srv.tokenService.GenerateRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	stored := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

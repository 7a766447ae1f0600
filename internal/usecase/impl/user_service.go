package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/domain/service"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	applicationRepo  repository.SellerApplicationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ApplicationRepo  repository.SellerApplicationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		applicationRepo:  params.ApplicationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetMe(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	return user, nil
}

func (srv *userService) UpdateMe(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.UpdateProfileInput,
) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.Validation("Name cannot be empty")
		}
		user.Name = name
	}
	if input.Image != nil {
		user.Image = strings.TrimSpace(*input.Image)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// List pages through users. Unknown role or status filters are dropped, not rejected.
func (srv *userService) List(ctx context.Context, input *usecase.ListUsersInput) (*entity.Page[*entity.User], error) {
	page, limit := entity.NormalizePage(input.Page, input.Limit)
	filter := entity.UserFilter{
		Search: strings.TrimSpace(input.Search),
		Page:   page,
		Limit:  limit,
	}
	if role, ok := entity.ParseRole(input.Role); ok {
		filter.Role = &role
	}
	if status, ok := entity.ParseUserStatus(input.Status); ok {
		filter.Status = &status
	}

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.NewPage(users, page, limit, total), nil
}

func (srv *userService) UpdateRole(ctx context.Context, actor *entity.Principal, id uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.Validation("Invalid role")
	}
	if actor.ID == id {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("cannot change your own role"))
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role changed",
		slog.String("user_id", id.String()),
		slog.String("from", user.Role.String()),
		slog.String("to", role.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	user.Role = role

	return user, nil
}

// UpdateStatus changes an account status. Banning also ends every session of the user.
func (srv *userService) UpdateStatus(
	ctx context.Context,
	actor *entity.Principal,
	id uuid.UUID,
	status entity.UserStatus,
) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.Validation("Invalid user status")
	}
	if actor.ID == id {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("cannot change your own status"))
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}
	user.Status = status

	if status == entity.UserStatusBanned {
		if err := srv.refreshTokenRepo.DeleteByUserID(ctx, id); err != nil {
			return nil, errors.Wrap(err, "failed to revoke sessions of banned user")
		}
	}

	srv.log(ctx).Info("User status changed",
		slog.String("user_id", id.String()),
		slog.String("status", string(status)),
		slog.String("actor_id", actor.ID.String()),
	)

	return user, nil
}

func (srv *userService) ApplySeller(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.ApplySellerInput,
) (*entity.SellerApplication, error) {
	app := &entity.SellerApplication{
		UserID:    principal.ID,
		StoreName: strings.TrimSpace(input.StoreName),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		Note:      strings.TrimSpace(input.Note),
		Status:    entity.ApplicationStatusPending,
	}

	switch {
	case app.StoreName == "":
		return nil, domainerrors.Validation("Store name is required")
	case app.Phone == "":
		return nil, domainerrors.Validation("Phone is required")
	case app.Address == "":
		return nil, domainerrors.Validation("Address is required")
	}

	user, err := srv.userRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}
	if user.Role == entity.RoleSeller || user.Role == entity.RoleAdmin {
		return nil, errors.WithStack(domainerrors.ErrAlreadySeller)
	}

	pending, err := srv.applicationRepo.HasPending(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending applications")
	}
	if pending {
		return nil, errors.WithStack(domainerrors.ErrApplicationPending)
	}

	if err := srv.applicationRepo.Create(ctx, app); err != nil {
		return nil, errors.Wrap(err, "failed to create seller application")
	}

	srv.log(ctx).Info("Seller application submitted",
		slog.String("application_id", app.ID.String()),
		slog.String("user_id", principal.ID.String()),
	)

	return app, nil
}

func (srv *userService) GetMyApplication(ctx context.Context, principal *entity.Principal) (*entity.SellerApplication, error) {
	app, err := srv.applicationRepo.FindLatestByUserID(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get seller application")
	}

	return app, nil
}

func (srv *userService) ListSellerApplications(
	ctx context.Context,
	input *usecase.ListApplicationsInput,
) (*entity.Page[*entity.SellerApplication], error) {
	page, limit := entity.NormalizePage(input.Page, input.Limit)

	apps, total, err := srv.applicationRepo.List(ctx, input.Status, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller applications")
	}

	return entity.NewPage(apps, page, limit, total), nil
}

func (srv *userService) GetSellerApplication(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error) {
	app, err := srv.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get seller application")
	}

	return app, nil
}

// UpdateSellerApplicationStatus records the review decision and, on approval, promotes the
// applicant to seller. Both writes commit together or not at all.
func (srv *userService) UpdateSellerApplicationStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.ApplicationStatus,
	reviewerID uuid.UUID,
) (*entity.SellerApplication, error) {
	if status != entity.ApplicationStatusApproved && status != entity.ApplicationStatusRejected {
		return nil, domainerrors.Validation("Status must be approved or rejected")
	}

	var app *entity.SellerApplication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.NewSellerApplicationRepository()

		var err error
		app, err = appRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find seller application")
		}
		if app.Status != entity.ApplicationStatusPending {
			return errors.WithStack(domainerrors.ErrConflict.WithDetails("seller application already " + string(app.Status)))
		}

		reviewedAt := srv.now().UTC()
		app.Status = status
		app.ReviewedBy = &reviewerID
		app.ReviewedAt = &reviewedAt
		if err := appRepo.UpdateReview(ctx, app); err != nil {
			return errors.Wrap(err, "failed to update seller application")
		}

		if status != entity.ApplicationStatusApproved {
			return nil
		}

		userRepo := repoFactory.NewUserRepository()
		applicant, err := userRepo.FindByID(ctx, app.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find applicant")
		}
		// Approval never demotes an admin.
		if applicant.Role == entity.RoleAdmin {
			app.User = applicant

			return nil
		}
		if err := userRepo.UpdateRole(ctx, applicant.ID, entity.RoleSeller); err != nil {
			return errors.Wrap(err, "failed to promote applicant")
		}
		applicant.Role = entity.RoleSeller
		app.User = applicant

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute seller application review")
	}

	srv.log(ctx).Info("Seller application reviewed",
		slog.String("application_id", app.ID.String()),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewerID.String()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventSellerApplicationReviewed, app.ID.String(), map[string]any{
		"userId":    app.UserID.String(),
		"storeName": app.StoreName,
		"status":    string(status),
	})

	return app, nil
}

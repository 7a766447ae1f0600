package usecase

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the profile fields to change; nil fields are left as they are.
type UpdateProfileInput struct {
	Name  *string
	Image *string
	Phone *string
}

// ListUsersInput holds raw admin listing filters. Role and status values outside their
// allow-lists are ignored rather than rejected.
type ListUsersInput struct {
	Role   string
	Status string
	Search string
	Page   int
	Limit  int
}

// ApplySellerInput defines a seller application.
type ApplySellerInput struct {
	StoreName string
	Phone     string
	Address   string
	Note      string
}

// ListApplicationsInput holds the seller application listing filters.
type ListApplicationsInput struct {
	Status *entity.ApplicationStatus
	Page   int
	Limit  int
}

// UserUsecase defines profile, user administration and seller onboarding operations.
type UserUsecase interface {
	GetMe(ctx context.Context, principal *entity.Principal) (*entity.User, error)
	UpdateMe(ctx context.Context, principal *entity.Principal, input *UpdateProfileInput) (*entity.User, error)
	List(ctx context.Context, input *ListUsersInput) (*entity.Page[*entity.User], error)
	UpdateRole(ctx context.Context, actor *entity.Principal, id uuid.UUID, role entity.Role) (*entity.User, error)
	UpdateStatus(ctx context.Context, actor *entity.Principal, id uuid.UUID, status entity.UserStatus) (*entity.User, error)

	ApplySeller(ctx context.Context, principal *entity.Principal, input *ApplySellerInput) (*entity.SellerApplication, error)
	GetMyApplication(ctx context.Context, principal *entity.Principal) (*entity.SellerApplication, error)
	ListSellerApplications(ctx context.Context, input *ListApplicationsInput) (*entity.Page[*entity.SellerApplication], error)
	GetSellerApplication(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error)
	UpdateSellerApplicationStatus(
		ctx context.Context,
		id uuid.UUID,
		status entity.ApplicationStatus,
		reviewerID uuid.UUID,
	) (*entity.SellerApplication, error)
}

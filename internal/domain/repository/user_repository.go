// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// Implementations return domain errors (see internal/domain/errors) for missing rows and
// uniqueness violations so callers never inspect driver errors.
package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the profile fields (name, image, phone) of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of the given user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateStatus sets the account status of the given user.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error

	// List returns one page of users matching the filter and the total number of matches.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error)
}

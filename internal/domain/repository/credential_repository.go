package repository

import (
	"context"

	"zenvira/internal/domain/entity"
)

// CredentialRepository stores sign-in methods for users.
type CredentialRepository interface {
	// Create persists a new credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByProvider retrieves a credential by its provider and provider-specific ID.
	FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.Credential, error)
}

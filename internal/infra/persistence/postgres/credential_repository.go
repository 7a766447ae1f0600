package postgres

import (
	"context"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new credential record.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := &model.CredentialModel{
		ID:             credential.ID,
		UserID:         credential.UserID,
		Provider:       credential.Provider,
		ProviderUserID: credential.ProviderUserID,
		PasswordHash:   credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		return writeError(err, domainerrors.ErrUserAlreadyExists, "failed to create credential")
	}

	credential.ID = credM.ID
	credential.CreatedAt = credM.CreatedAt

	return nil
}

// FindByProvider retrieves a credential by its provider and provider-specific ID.
func (repo *credentialRepository) FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&credM).Error
	if err != nil {
		return nil, notFoundOr(err, domainerrors.ErrInvalidCredentials, "failed to find credential")
	}

	return &entity.Credential{
		ID:             credM.ID,
		UserID:         credM.UserID,
		Provider:       credM.Provider,
		ProviderUserID: credM.ProviderUserID,
		PasswordHash:   credM.PasswordHash,
		CreatedAt:      credM.CreatedAt,
	}, nil
}

package repository

import (
	"context"
	"time"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshTokenRepository defines the interface for refresh token (session) persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash deletes a refresh token by its hash, ending the session.
	// It reports whether a token was actually removed.
	DeleteByHash(ctx context.Context, tokenHash string) (bool, error)

	// DeleteByUserID removes every session of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens that expired before the given instant.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

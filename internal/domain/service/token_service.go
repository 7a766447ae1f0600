package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"zenvira/internal/domain/entity"
)

// TokenTypeAccess marks short-lived bearer tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token for the user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// GenerateRefreshToken returns a random opaque refresh token and its hash for storage.
	GenerateRefreshToken() (token string, hash string, err error)

	// HashRefreshToken hashes a presented refresh token the same way it was stored.
	HashRefreshToken(token string) string

	// ValidateAccessToken checks the signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

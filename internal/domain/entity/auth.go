// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider the identity service issues.
const ProviderTypeEmail = "email"

// Credential represents a single method of signing in.
type Credential struct {
	ID             uuid.UUID // The unique ID for this credential record.
	UserID         uuid.UUID // Links the credential to the User it belongs to.
	Provider       string    // The credential provider, currently always "email".
	ProviderUserID string    // The login identifier at the provider (the email address).
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived session that can mint new access tokens.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // HMAC-SHA256 of the raw token keyed by the refresh secret; the raw value is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

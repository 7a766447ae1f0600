// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an email account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued session tokens.
type AuthOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresIn    int64        `json:"expiresIn"` // access token lifetime in seconds
	User         *entity.User `json:"user"`
}

// IdentityUsecase issues and validates sessions. It is the identity provider the
// authorization middleware resolves principals through.
type IdentityUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	SignOut(ctx context.Context, refreshToken string) error
	ResolveSession(ctx context.Context, accessToken string) (*entity.Principal, error)
	// PurgeExpiredSessions removes refresh tokens past their expiry and returns how many were deleted.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

package usecase

import (
	"context"

	"zenvira/internal/domain/entity"
)

// StatsUsecase computes dashboard rollups. Both operations are read-only.
type StatsUsecase interface {
	// SellerStats scopes to the principal unless the principal is an admin and
	// requestedSellerID is set.
	SellerStats(ctx context.Context, principal *entity.Principal, requestedSellerID string) (*entity.SellerStats, error)
	AdminStats(ctx context.Context) (*entity.AdminStats, error)
}

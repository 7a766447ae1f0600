package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsRepository exposes the read-only aggregates behind the dashboards.
type StatsRepository interface {
	// CountMedicinesBySeller counts medicines owned by the seller, in any status.
	CountMedicinesBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error)

	// SellerOrderLines returns every order line of the seller's medicines with its order status.
	SellerOrderLines(ctx context.Context, sellerID uuid.UUID) ([]entity.SellerOrderLine, error)

	// SellerRatings summarises reviews on the seller's medicines.
	SellerRatings(ctx context.Context, sellerID uuid.UUID) (entity.RatingSummary, error)

	CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error)
	CountMedicines(ctx context.Context) (int64, error)

	// OrdersByStatus returns order count and summed total per status.
	OrdersByStatus(ctx context.Context) ([]entity.OrderStatusSummary, error)

	// Ratings summarises every review on the platform.
	Ratings(ctx context.Context) (entity.RatingSummary, error)

	CountPendingApplications(ctx context.Context) (int64, error)
}

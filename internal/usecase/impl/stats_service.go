package impl

import (
	"context"
	"strings"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// statsService computes read-only rollups; it holds no state between calls.
type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(statsRepo repository.StatsRepository) usecase.StatsUsecase {
	return &statsService{statsRepo: statsRepo}
}

// SellerStats aggregates a seller's catalogue, sales and reviews. Only admins may pick the seller.
func (srv *statsService) SellerStats(
	ctx context.Context,
	principal *entity.Principal,
	requestedSellerID string,
) (*entity.SellerStats, error) {
	sellerID, err := resolveSellerID(principal, requestedSellerID)
	if err != nil {
		return nil, err
	}

	totalProducts, err := srv.statsRepo.CountMedicinesBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count seller medicines")
	}

	lines, err := srv.statsRepo.SellerOrderLines(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller order lines")
	}

	orders := make(map[uuid.UUID]struct{}, len(lines))
	sales := decimal.Zero
	for _, line := range lines {
		orders[line.OrderID] = struct{}{}
		if line.OrderStatus == entity.OrderStatusCancelled {
			continue
		}
		sales = sales.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	ratings, err := srv.statsRepo.SellerRatings(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise seller ratings")
	}

	return &entity.SellerStats{
		SellerID:      sellerID,
		TotalProducts: totalProducts,
		TotalOrders:   int64(len(orders)),
		TotalSales:    entity.RoundMoney(sales),
		AverageReview: ratings.Average(),
		TotalReviews:  ratings.Count,
	}, nil
}

func resolveSellerID(principal *entity.Principal, requestedSellerID string) (uuid.UUID, error) {
	if principal == nil {
		return uuid.Nil, domainerrors.Validation("Seller id is required")
	}

	requestedSellerID = strings.TrimSpace(requestedSellerID)
	if !principal.IsAdmin() || requestedSellerID == "" {
		if principal.ID == uuid.Nil {
			return uuid.Nil, domainerrors.Validation("Seller id is required")
		}

		return principal.ID, nil
	}

	sellerID, err := uuid.Parse(requestedSellerID)
	if err != nil {
		return uuid.Nil, domainerrors.Validation("Invalid sellerId")
	}

	return sellerID, nil
}

// AdminStats aggregates platform-wide totals.
func (srv *statsService) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	stats := &entity.AdminStats{
		OrdersByStatus: make(map[string]int64),
	}

	roleCounts, err := srv.statsRepo.CountUsersByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	for _, rc := range roleCounts {
		stats.Users.Total += rc.Count
		switch rc.Role {
		case entity.RoleCustomer:
			stats.Users.Customers = rc.Count
		case entity.RoleSeller:
			stats.Users.Sellers = rc.Count
		case entity.RoleAdmin:
			stats.Users.Admins = rc.Count
		}
	}

	if stats.TotalProducts, err = srv.statsRepo.CountMedicines(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count medicines")
	}

	summaries, err := srv.statsRepo.OrdersByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise orders")
	}
	sales := decimal.Zero
	for _, summary := range summaries {
		stats.TotalOrders += summary.Count
		stats.OrdersByStatus[string(summary.Status)] += summary.Count
		if summary.Status != entity.OrderStatusCancelled {
			sales = sales.Add(summary.Total)
		}
	}
	stats.TotalSales = entity.RoundMoney(sales)

	ratings, err := srv.statsRepo.Ratings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise ratings")
	}
	stats.AverageReview = ratings.Average()
	stats.TotalReviews = ratings.Count

	if stats.PendingSellerApplications, err = srv.statsRepo.CountPendingApplications(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count pending seller applications")
	}

	return stats, nil
}

package postgres

import (
	"context"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

type sellerOrderLineRow struct {
	OrderID     uuid.UUID
	OrderStatus string
	Price       decimal.Decimal
	Quantity    int
}

type ratingRow struct {
	RatingCount int64
	RatingSum   int64
}

type roleCountRow struct {
	Role      string
	UserCount int64
}

type orderStatusRow struct {
	Status     string
	OrderCount int64
	OrderTotal decimal.Decimal
}

func (repo *statsRepository) CountMedicinesBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count seller medicines")
	}

	return count, nil
}

func (repo *statsRepository) SellerOrderLines(ctx context.Context, sellerID uuid.UUID) ([]entity.SellerOrderLine, error) {
	var rows []sellerOrderLineRow
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_items.order_id AS order_id, orders.status AS order_status, order_items.price AS price, order_items.quantity AS quantity").
		Joins("JOIN medicines ON medicines.id = order_items.medicine_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("medicines.seller_id = ?", sellerID).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load seller order lines")
	}

	lines := make([]entity.SellerOrderLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.SellerOrderLine{
			OrderID:     row.OrderID,
			OrderStatus: entity.OrderStatus(row.OrderStatus),
			Price:       row.Price,
			Quantity:    row.Quantity,
		})
	}

	return lines, nil
}

func (repo *statsRepository) SellerRatings(ctx context.Context, sellerID uuid.UUID) (entity.RatingSummary, error) {
	var row ratingRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(reviews.id) AS rating_count, COALESCE(SUM(reviews.rating), 0) AS rating_sum").
		Joins("JOIN medicines ON medicines.id = reviews.medicine_id").
		Where("medicines.seller_id = ?", sellerID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, domainerrors.NewDatabaseExecuteError(err, "failed to summarise seller reviews")
	}

	return entity.RatingSummary{Count: row.RatingCount, Sum: row.RatingSum}, nil
}

func (repo *statsRepository) CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error) {
	var rows []roleCountRow
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("role, COUNT(*) AS user_count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count users by role")
	}

	counts := make([]entity.RoleCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.RoleCount{Role: entity.Role(row.Role), Count: row.UserCount})
	}

	return counts, nil
}

func (repo *statsRepository) CountMedicines(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MedicineModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count medicines")
	}

	return count, nil
}

func (repo *statsRepository) OrdersByStatus(ctx context.Context) ([]entity.OrderStatusSummary, error) {
	var rows []orderStatusRow
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS order_total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to group orders by status")
	}

	summaries := make([]entity.OrderStatusSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, entity.OrderStatusSummary{
			Status: entity.OrderStatus(row.Status),
			Count:  row.OrderCount,
			Total:  row.OrderTotal,
		})
	}

	return summaries, nil
}

func (repo *statsRepository) Ratings(ctx context.Context) (entity.RatingSummary, error) {
	var row ratingRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS rating_count, COALESCE(SUM(rating), 0) AS rating_sum").
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, domainerrors.NewDatabaseExecuteError(err, "failed to summarise reviews")
	}

	return entity.RatingSummary{Count: row.RatingCount, Sum: row.RatingSum}, nil
}

func (repo *statsRepository) CountPendingApplications(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SellerApplicationModel{}).
		Where("status = ?", string(entity.ApplicationStatusPending)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count pending seller applications")
	}

	return count, nil
}

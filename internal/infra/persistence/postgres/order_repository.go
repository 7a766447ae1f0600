package postgres

import (
	"context"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items. gorm writes the has-many association in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return writeError(err, nil, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Preload("Items").First(&orderM, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.UserID != nil {
		query = query.Where("orders.user_id = ?", *filter.UserID)
	}
	if filter.SellerID != nil {
		query = query.Where("orders.id IN (?)", sellerOrderIDs(repo.db.WithContext(ctx), *filter.SellerID))
	}
	if filter.Status != nil {
		query = query.Where("orders.status = ?", string(*filter.Status))
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	var orderMs []*model.OrderModel
	if err := query.Preload("Items").
		Scopes(paginate(filter.Page, filter.Limit)).
		Order("orders.created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateStatus is a compare-and-set on the current status so that two concurrent
// transitions of the same order cannot both succeed.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return writeError(result.Error, nil, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithDetails("order status changed concurrently"))
	}

	return nil
}

func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))

	return checkUpdated(result, domainerrors.ErrOrderNotFound, "failed to update payment status")
}

func (repo *orderRepository) ContainsSellerItems(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Joins("JOIN medicines ON medicines.id = order_items.medicine_id").
		Where("order_items.order_id = ? AND medicines.seller_id = ?", orderID, sellerID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check order items")
	}

	return count > 0, nil
}

// sellerOrderIDs selects the ids of orders with at least one item sold by sellerID.
func sellerOrderIDs(db *gorm.DB, sellerID uuid.UUID) *gorm.DB {
	return db.Model(&model.OrderItemModel{}).
		Select("DISTINCT order_items.order_id").
		Joins("JOIN medicines ON medicines.id = order_items.medicine_id").
		Where("medicines.seller_id = ?", sellerID)
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:           itemM.ID,
			OrderID:      itemM.OrderID,
			MedicineID:   itemM.MedicineID,
			MedicineName: itemM.MedicineName,
			Price:        itemM.Price,
			Quantity:     itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: data.ShippingAddress,
		Phone:           data.Phone,
		Total:           data.Total,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ID:           item.ID,
			OrderID:      data.ID,
			MedicineID:   item.MedicineID,
			MedicineName: item.MedicineName,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		PaymentStatus:   string(data.PaymentStatus),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: data.ShippingAddress,
		Phone:           data.Phone,
		Total:           data.Total,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

package repository

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// Create persists the order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns one page of orders (items included), newest first.
	// UserID restricts to a buyer, SellerID to orders containing that seller's medicines.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	// UpdateStatus moves an order from one status to another. It fails with
	// ErrInvalidOrderTransition when the order is no longer in the from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// ContainsSellerItems reports whether the order has at least one item sold by sellerID.
	ContainsSellerItems(ctx context.Context, orderID, sellerID uuid.UUID) (bool, error)
}

package usecase

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	MedicineID uuid.UUID
	Quantity   int
}

// PlaceOrderInput defines a checkout. An empty payment method means cash on delivery.
type PlaceOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

// ListOrdersInput holds the order listing filters.
type ListOrdersInput struct {
	Status *entity.OrderStatus
	Page   int
	Limit  int
}

// OrderUsecase defines the checkout and fulfilment operations.
type OrderUsecase interface {
	Place(ctx context.Context, principal *entity.Principal, input *PlaceOrderInput) (*entity.Order, error)
	List(ctx context.Context, principal *entity.Principal, input *ListOrdersInput) (*entity.Page[*entity.Order], error)
	ListForSeller(ctx context.Context, principal *entity.Principal, input *ListOrdersInput) (*entity.Page[*entity.Order], error)
	Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, principal *entity.Principal, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Order, error)
	Cancel(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error)
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/constants"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/domain/service"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place checks out the requested items in one transaction: every medicine must be active and
// in stock, stock is reserved with a conditional decrement, and name and price are snapshotted.
func (srv *orderService) Place(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.PlaceOrderInput,
) (*entity.Order, error) {
	lines, err := mergeOrderLines(input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          principal.ID,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusUnpaid,
		PaymentMethod:   strings.ToLower(strings.TrimSpace(input.PaymentMethod)),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Phone:           strings.TrimSpace(input.Phone),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = entity.PaymentMethodCashOnDelivery
	}

	switch {
	case order.ShippingAddress == "":
		return nil, domainerrors.Validation("Shipping address is required")
	case order.Phone == "":
		return nil, domainerrors.Validation("Phone is required")
	case order.PaymentMethod != entity.PaymentMethodCashOnDelivery:
		return nil, domainerrors.Validation("Unsupported payment method")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		medicineRepo := repoFactory.NewMedicineRepository()

		order.Items = make([]*entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			medicine, err := medicineRepo.FindByID(ctx, line.MedicineID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrMedicineNotFound) {
					return domainerrors.Validation("Medicine " + line.MedicineID.String() + " does not exist")
				}

				return errors.Wrap(err, "failed to load ordered medicine")
			}
			if medicine.Status != entity.MedicineStatusActive {
				return domainerrors.Validation("Medicine " + medicine.Name + " is not available")
			}

			if err := medicineRepo.DecrementStock(ctx, medicine.ID, line.Quantity); err != nil {
				if errors.Is(err, domainerrors.ErrInsufficientStock) {
					return errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(medicine.Name))
				}

				return errors.Wrap(err, "failed to reserve stock")
			}

			order.Items = append(order.Items, &entity.OrderItem{
				MedicineID:   medicine.ID,
				MedicineName: medicine.Name,
				Price:        medicine.Price,
				Quantity:     line.Quantity,
			})
		}
		order.RecalculateTotal()

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", principal.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventOrderPlaced, order.ID.String(), map[string]any{
		"userId":    order.UserID.String(),
		"email":     principal.Email,
		"total":     order.Total.StringFixed(2),
		"itemCount": len(order.Items),
	})

	return order, nil
}

// mergeOrderLines validates quantities and folds repeated medicines into one line,
// keeping the order in which they first appear.
func mergeOrderLines(items []usecase.OrderItemInput) ([]usecase.OrderItemInput, error) {
	if len(items) == 0 {
		return nil, domainerrors.Validation("Order must contain at least one item")
	}

	lines := make([]usecase.OrderItemInput, 0, len(items))
	positions := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		if item.MedicineID == uuid.Nil {
			return nil, domainerrors.Validation("Medicine id is required")
		}
		if item.Quantity < 1 {
			return nil, domainerrors.Validation("Quantity must be at least 1")
		}

		if pos, ok := positions[item.MedicineID]; ok {
			lines[pos].Quantity += item.Quantity

			continue
		}
		positions[item.MedicineID] = len(lines)
		lines = append(lines, item)
	}

	return lines, nil
}

// List scopes orders by role: customers see their own, sellers those with their items, admins all.
func (srv *orderService) List(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.ListOrdersInput,
) (*entity.Page[*entity.Order], error) {
	filter := entity.OrderFilter{Status: input.Status}

	switch principal.Role {
	case entity.RoleAdmin:
		// unrestricted
	case entity.RoleSeller:
		sellerID := principal.ID
		filter.SellerID = &sellerID
	default:
		userID := principal.ID
		filter.UserID = &userID
	}

	return srv.list(ctx, filter, input.Page, input.Limit)
}

// ListForSeller returns the orders holding the seller's items. Admins see every order.
func (srv *orderService) ListForSeller(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.ListOrdersInput,
) (*entity.Page[*entity.Order], error) {
	filter := entity.OrderFilter{Status: input.Status}
	if !principal.IsAdmin() {
		sellerID := principal.ID
		filter.SellerID = &sellerID
	}

	return srv.list(ctx, filter, input.Page, input.Limit)
}

func (srv *orderService) list(ctx context.Context, filter entity.OrderFilter, page, limit int) (*entity.Page[*entity.Order], error) {
	filter.Page, filter.Limit = entity.NormalizePage(page, limit)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPage(orders, filter.Page, filter.Limit, total), nil
}

func (srv *orderService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	if order.UserID == principal.ID || principal.IsAdmin() {
		return order, nil
	}
	if principal.Role == entity.RoleSeller {
		if err := authorizeSeller(ctx, srv.orderRepo, principal, order.ID); err != nil {
			return nil, err
		}

		return order, nil
	}

	return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("order belongs to another user"))
}

// UpdateStatus moves an order along its lifecycle. Sellers may only touch orders with their items.
func (srv *orderService) UpdateStatus(
	ctx context.Context,
	principal *entity.Principal,
	id uuid.UUID,
	status entity.OrderStatus,
) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.Validation("Invalid order status")
	}

	return srv.transition(ctx, id, status, func(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
		if principal.IsAdmin() {
			return nil
		}

		return authorizeSeller(ctx, orderRepo, principal, order.ID)
	})
}

// Cancel lets the buyer withdraw an order that has not been picked up yet.
func (srv *orderService) Cancel(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, id, entity.OrderStatusCancelled, func(_ context.Context, _ repository.OrderRepository, order *entity.Order) error {
		if order.UserID != principal.ID && !principal.IsAdmin() {
			return errors.WithStack(domainerrors.ErrForbidden.WithDetails("order belongs to another user"))
		}
		if order.Status != entity.OrderStatusPending {
			return errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithDetails("only pending orders can be cancelled"))
		}

		return nil
	})
}

type orderGuard func(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error

// transition applies a status change inside a transaction and returns cancelled items to stock.
func (srv *orderService) transition(
	ctx context.Context,
	id uuid.UUID,
	next entity.OrderStatus,
	guard orderGuard,
) (*entity.Order, error) {
	var (
		order    *entity.Order
		previous entity.OrderStatus
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		if err := guard(ctx, orderRepo, order); err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(next) {
			return errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithDetails(
				string(order.Status) + " -> " + string(next),
			))
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, order.Status, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if next == entity.OrderStatusCancelled {
			medicineRepo := repoFactory.NewMedicineRepository()
			for _, item := range order.Items {
				if err := medicineRepo.IncrementStock(ctx, item.MedicineID, item.Quantity); err != nil {
					return errors.Wrap(err, "failed to restock cancelled item")
				}
			}
		}

		previous = order.Status
		order.Status = next

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("order_id", order.ID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(next)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventOrderStatusChanged, order.ID.String(), map[string]any{
		"userId": order.UserID.String(),
		"from":   string(previous),
		"to":     string(next),
	})

	return order, nil
}

func (srv *orderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.Validation("Invalid payment status")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := srv.orderRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}
	order.PaymentStatus = status

	return order, nil
}

func authorizeSeller(ctx context.Context, orderRepo repository.OrderRepository, principal *entity.Principal, orderID uuid.UUID) error {
	if principal.Role != entity.RoleSeller {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	ok, err := orderRepo.ContainsSellerItems(ctx, orderID, principal.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check seller items")
	}
	if !ok {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("order has none of your items"))
	}

	return nil
}

package handler

import (
	"strings"

	"zenvira/internal/delivery/api/response"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler serves checkout and fulfilment endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// OrderItemRequest is one line of a checkout.
type OrderItemRequest struct {
	MedicineID string `json:"medicineId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// PlaceOrderRequest represents the body of POST /api/orders.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required,max=500"`
	Phone           string             `json:"phone" validate:"required,max=30"`
	PaymentMethod   string             `json:"paymentMethod" validate:"omitempty,oneof=cash_on_delivery"`
}

// UpdateOrderStatusRequest represents the body of PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest represents the body of PATCH /api/orders/:id/payment-status.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			MedicineID: uuid.MustParse(item.MedicineID),
			Quantity:   item.Quantity,
		})
	}

	order, err := h.orderUC.Place(c.Request().Context(), principal, &usecase.PlaceOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order, "Order placed successfully")
}

// List handles GET /api/orders, scoped to the caller's role.
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	input, err := listOrdersQuery(c)
	if err != nil {
		return err
	}

	page, err := h.orderUC.List(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// ListForSeller handles GET /api/orders/seller.
func (h *OrderHandler) ListForSeller(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	input, err := listOrdersQuery(c)
	if err != nil {
		return err
	}

	page, err := h.orderUC.ListForSeller(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// Cancel handles PATCH /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order, "Order cancelled successfully")
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, _ := entity.ParseOrderStatus(req.Status)
	order, err := h.orderUC.UpdateStatus(c.Request().Context(), principal, id, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order, "Order status updated successfully")
}

// UpdatePaymentStatus handles PATCH /api/orders/:id/payment-status.
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePaymentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, _ := entity.ParsePaymentStatus(req.PaymentStatus)
	order, err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), id, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order, "Payment status updated successfully")
}

func listOrdersQuery(c echo.Context) (*usecase.ListOrdersInput, error) {
	input := &usecase.ListOrdersInput{}
	input.Page, input.Limit = pageQuery(c)

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status, ok := entity.ParseOrderStatus(raw)
		if !ok {
			return nil, domainerrors.Validation("Invalid status")
		}
		input.Status = &status
	}

	return input, nil
}

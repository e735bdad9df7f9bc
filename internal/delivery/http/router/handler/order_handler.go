package handler

import (
	"log/slog"
	"net/http"

	"github.com/irabeny89/ebbs-io/internal/delivery/http/middleware"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/response"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrder creates an order from catalog prices.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.ClientID = payload.UserID

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// MyOrders pages through the orders the caller placed as a buyer.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.orderUC.MyOrders(c.Request().Context(), payload.UserID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Orders retrieved successfully")
}

// MyRequests pages through the orders containing items the caller sells.
func (h *OrderHandler) MyRequests(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req pagination.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	page, err := h.orderUC.MyRequests(c.Request().Context(), payload.UserID, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Order requests retrieved successfully")
}

// UpdateItemStatus moves one sold item to a new fulfilment status.
func (h *OrderHandler) UpdateItemStatus(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.UpdateItemStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = payload.UserID

	if err := h.orderUC.UpdateItemStatus(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item status updated successfully")
}

// SetDeliveryDate records the promised delivery date of an order.
func (h *OrderHandler) SetDeliveryDate(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.SetDeliveryDateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery date input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = payload.UserID

	if err := h.orderUC.SetDeliveryDate(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery date set successfully")
}

// Stats tallies the caller's sold items by fulfilment status.
func (h *OrderHandler) Stats(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	stats, err := h.orderUC.Stats(c.Request().Context(), payload.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Order stats retrieved successfully")
}

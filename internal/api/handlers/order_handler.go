package handlers

import (
	"cooknextdoor/domain"
	"cooknextdoor/internal/api/presenters"
	"cooknextdoor/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		GetBuyerOrders(c *fiber.Ctx) error
		GetSellerOrders(c *fiber.Ctx) error
		GetSellerDashboard(c *fiber.Ctx) error
		GetBuyerDashboard(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.orderService.PlaceOrder(c.Context(), *req, userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.orderService.UpdateOrderStatus(c.Context(), orderID, *req, userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *orderHandler) GetBuyerOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetOrdersByBuyer(c.Context(), userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, orders)
}

func (h *orderHandler) GetSellerOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetOrdersBySeller(c.Context(), userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, orders)
}

func (h *orderHandler) GetSellerDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.orderService.GetSellerDashboard(c.Context(), userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, stats)
}

func (h *orderHandler) GetBuyerDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.orderService.GetBuyerDashboard(c.Context(), userID)
	if err != nil {
		status := statusForError(err)
		return presenters.ErrorResponse(c, status, errorMessage(err, status))
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, stats)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/dto"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
	apperrors "github.com/shaheencodecrafters/marketplace-service/pkg/util"
)

// OrdersHandler exposes order placement, listing and payment endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	sessionUserID, _ := session.UserIDFromContext(c)
	order, err := h.orders.CreateOrder(c.Context(), sessionUserID, service.OrderCreateInput{
		UserID:       req.UserID,
		ProductID:    req.ProductID,
		LocationName: req.LocationName,
		LocationLong: req.LocationLong,
		LocationLat:  req.LocationLat,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   dto.NewOrderResponse(order),
	})
}

// ListMine handles GET /api/my-orders/:userId.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	sessionUserID, _ := session.UserIDFromContext(c)
	orders, err := h.orders.ListUserOrders(c.Context(), sessionUserID, c.Params("userId"))
	if err != nil {
		return err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderResponse(&orders[i]))
	}
	return c.JSON(items)
}

// Payment handles POST /api/orders/payment.
func (h *OrdersHandler) Payment(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.orders.ProcessPayment(c.Context(), service.PaymentInput{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Payment processed successfully"})
}

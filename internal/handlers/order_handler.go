package handlers

import (
	"log"

	"antar/internal/middleware"
	"antar/internal/models"
	"antar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The
// status route is open to every staff role; the transition matrix does
// the fine-grained gating per (role, status) pair.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/place", middleware.RequireRoles(models.RoleCustomer), h.HandlePlaceOrder)
	orderRoutes.Get("/my-orders", middleware.RequireRoles(models.RoleCustomer), h.HandleMyOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id", middleware.RequireRoles(models.RoleCustomer), h.HandleModifyOrder)
	orderRoutes.Patch("/:id/status",
		middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleDeliveryPerson, models.RoleAdmin),
		h.HandleUpdateOrderStatus)
}

// HandlePlaceOrder creates an order from the customer's current cart.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), customerID)
	if err != nil {
		log.Printf("Error placing order for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleMyOrders lists the calling customer's orders.
func (h *OrderHandler) HandleMyOrders(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	orders, err := h.service.ListMyOrders(customerID)
	if err != nil {
		log.Printf("Error listing orders for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(order)
}

// ModifyOrderRequest represents the request body for replacing a
// pending order's items.
type ModifyOrderRequest struct {
	Items []models.OrderItem `json:"items"`
}

// HandleModifyOrder replaces the items of a pending order owned by the
// calling customer.
func (h *OrderHandler) HandleModifyOrder(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	orderID := c.Params("id")
	var req ModifyOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing modify-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.ModifyOrder(orderID, customerID, req.Items)
	if err != nil {
		log.Printf("Error modifying order %s: %v", orderID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(order)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus moves an order through its lifecycle on
// behalf of the calling staff role.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	role, ok := currentRole(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing role claim",
		})
	}

	orderID := c.Params("id")
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	order, err := h.service.UpdateStatus(orderID, role, req.Status)
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(order)
}

package handlers

import (
	"fmt"
	"log"

	"antar/internal/middleware"
	"antar/internal/models"
	"antar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes are customer-only.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart", middleware.RequireRoles(models.RoleCustomer))
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Patch("/decrease-quantity", h.HandleDecreaseQuantity)
	cartRoutes.Delete("/remove", h.HandleRemoveItem)
}

// AddToCartRequest represents the request body for adding a cart item.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddToCart adds a menu item to the calling customer's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	cart, err := h.service.AddItem(c.Context(), customerID, req.MenuItemID, req.Quantity)
	if err != nil {
		log.Printf("Error adding item to cart for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(cart)
}

// HandleGetCart returns the customer's cart with resolved menu details.
// A customer without a cart gets an empty one, never a 404.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	cart, err := h.service.GetCart(c.Context(), customerID)
	if err != nil {
		log.Printf("Error getting cart for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(cart)
}

// CartItemRequest identifies a cart entry by its menu item.
type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
}

// HandleDecreaseQuantity lowers a cart entry's quantity by one,
// removing the entry when it reaches zero.
func (h *CartHandler) HandleDecreaseQuantity(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil || req.MenuItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "menu_item_id is required",
		})
	}

	item, err := h.service.DecreaseItem(c.Context(), customerID, req.MenuItemID)
	if err != nil {
		log.Printf("Error decreasing cart item for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Quantity updated successfully",
		"item":    item, // null when the entry was removed
	})
}

// HandleRemoveItem deletes a cart entry regardless of quantity.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing user identity",
		})
	}

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil || req.MenuItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "menu_item_id is required",
		})
	}

	cart, err := h.service.RemoveItem(c.Context(), customerID, req.MenuItemID)
	if err != nil {
		log.Printf("Error removing cart item for customer %s: %v", customerID, err)
		return respondDomainError(c, err)
	}
	return c.JSON(cart)
}

package handlers

import (
	"fmt"
	"log"
	"strings"

	"antar/internal/middleware"
	"antar/internal/models"
	"antar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles HTTP requests for menu items.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the menu item routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu-items")
	menuRoutes.Get("/", h.HandleGetMenuItems)
	menuRoutes.Get("/:id", h.HandleGetMenuItemByID)
	menuRoutes.Post("/", middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleAdmin), h.HandleCreateMenuItem)
	menuRoutes.Put("/:id", middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleAdmin), h.HandleUpdateMenuItem)
	menuRoutes.Delete("/:id", middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleAdmin), h.HandleDeleteMenuItem)
}

// HandleGetMenuItems retrieves all menu items.
func (h *MenuHandler) HandleGetMenuItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllMenuItems()
	if err != nil {
		log.Printf("Error getting all menu items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetMenuItemByID retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetMenuItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetMenuItemByID(itemID)
	if err != nil {
		log.Printf("Error getting menu item by ID %s: %v", itemID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item with ID %s not found", itemID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleCreateMenuItem creates a new menu item.
func (h *MenuHandler) HandleCreateMenuItem(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing create-menu-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
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

	if err := h.service.CreateMenuItem(&item); err != nil {
		log.Printf("Error creating menu item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create menu item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateMenuItem updates an existing menu item.
func (h *MenuHandler) HandleUpdateMenuItem(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing update-menu-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = c.Params("id")

	if err := h.service.UpdateMenuItem(&item); err != nil {
		log.Printf("Error updating menu item %s: %v", item.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item with ID %s not found", item.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleDeleteMenuItem deletes a menu item by its ID.
func (h *MenuHandler) HandleDeleteMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.service.DeleteMenuItem(itemID); err != nil {
		log.Printf("Error deleting menu item %s: %v", itemID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item with ID %s not found", itemID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Menu item %s deleted successfully", itemID),
	})
}

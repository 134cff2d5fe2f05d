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

// RestaurantHandler handles HTTP requests for restaurants.
type RestaurantHandler struct {
	service     *services.RestaurantService
	menuService *services.MenuService
	validate    *validator.Validate
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService, menuService *services.MenuService) *RestaurantHandler {
	return &RestaurantHandler{
		service:     service,
		menuService: menuService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the restaurant routes with the Fiber app.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Get("/", h.HandleGetRestaurants)
	restaurantRoutes.Get("/:id", h.HandleGetRestaurantByID)
	restaurantRoutes.Get("/:id/menu", h.HandleGetRestaurantMenu)
	restaurantRoutes.Post("/", middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleAdmin), h.HandleCreateRestaurant)
	restaurantRoutes.Put("/:id", middleware.RequireRoles(models.RoleRestaurantAdmin, models.RoleAdmin), h.HandleUpdateRestaurant)
	restaurantRoutes.Patch("/:id/verify", middleware.RequireRoles(models.RoleAdmin), h.HandleVerifyRestaurant)
	restaurantRoutes.Delete("/:id", middleware.RequireRoles(models.RoleAdmin), h.HandleDeleteRestaurant)
}

// HandleGetRestaurants retrieves all restaurants.
func (h *RestaurantHandler) HandleGetRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.GetAllRestaurants()
	if err != nil {
		log.Printf("Error getting all restaurants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve restaurants",
			"error":   err.Error(),
		})
	}
	return c.JSON(restaurants)
}

// HandleGetRestaurantByID retrieves a single restaurant by its ID.
func (h *RestaurantHandler) HandleGetRestaurantByID(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	restaurant, err := h.service.GetRestaurantByID(restaurantID)
	if err != nil {
		log.Printf("Error getting restaurant by ID %s: %v", restaurantID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", restaurantID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve restaurant",
			"error":   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// HandleGetRestaurantMenu retrieves the menu of a restaurant.
func (h *RestaurantHandler) HandleGetRestaurantMenu(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	items, err := h.menuService.GetMenuForRestaurant(restaurantID)
	if err != nil {
		log.Printf("Error getting menu for restaurant %s: %v", restaurantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleCreateRestaurant creates a new restaurant owned by the caller.
func (h *RestaurantHandler) HandleCreateRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		log.Printf("Error parsing create-restaurant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if ownerID, ok := currentUserID(c); ok && restaurant.OwnerID == "" {
		restaurant.OwnerID = ownerID
	}

	if err := h.validate.Struct(restaurant); err != nil {
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

	if err := h.service.CreateRestaurant(&restaurant); err != nil {
		log.Printf("Error creating restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create restaurant",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

// HandleUpdateRestaurant updates an existing restaurant.
func (h *RestaurantHandler) HandleUpdateRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		log.Printf("Error parsing update-restaurant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	restaurant.ID = c.Params("id")

	if err := h.service.UpdateRestaurant(&restaurant); err != nil {
		log.Printf("Error updating restaurant %s: %v", restaurant.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", restaurant.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update restaurant",
			"error":   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// HandleVerifyRestaurant marks a restaurant as verified.
func (h *RestaurantHandler) HandleVerifyRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	restaurant, err := h.service.VerifyRestaurant(restaurantID)
	if err != nil {
		log.Printf("Error verifying restaurant %s: %v", restaurantID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", restaurantID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not verify restaurant",
			"error":   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// HandleDeleteRestaurant deletes a restaurant by its ID.
func (h *RestaurantHandler) HandleDeleteRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	if err := h.service.DeleteRestaurant(restaurantID); err != nil {
		log.Printf("Error deleting restaurant %s: %v", restaurantID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", restaurantID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete restaurant",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Restaurant %s deleted successfully", restaurantID),
	})
}

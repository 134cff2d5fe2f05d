package services

import (
	"antar/internal/models"
	"antar/internal/repositories"
)

// MenuService handles business logic for the menu catalog.
type MenuService struct {
	repo repositories.MenuItemRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuItemRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetAllMenuItems retrieves all menu items.
func (s *MenuService) GetAllMenuItems() ([]models.MenuItem, error) {
	return s.repo.GetAll()
}

// GetMenuForRestaurant retrieves all menu items offered by a restaurant.
func (s *MenuService) GetMenuForRestaurant(restaurantID string) ([]models.MenuItem, error) {
	return s.repo.GetByRestaurant(restaurantID)
}

// GetMenuItemByID retrieves a single menu item by its ID.
func (s *MenuService) GetMenuItemByID(id string) (*models.MenuItem, error) {
	return s.repo.GetByID(id)
}

// CreateMenuItem creates a new menu item.
func (s *MenuService) CreateMenuItem(item *models.MenuItem) error {
	return s.repo.Create(item)
}

// UpdateMenuItem updates an existing menu item.
func (s *MenuService) UpdateMenuItem(item *models.MenuItem) error {
	return s.repo.Update(item)
}

// DeleteMenuItem deletes a menu item by its ID.
func (s *MenuService) DeleteMenuItem(id string) error {
	return s.repo.Delete(id)
}

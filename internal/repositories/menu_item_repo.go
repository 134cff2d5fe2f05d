package repositories

import (
	"antar/internal/models"
)

// MenuItemRepository defines the interface for menu catalog data access.
type MenuItemRepository interface {
	GetAll() ([]models.MenuItem, error)
	GetByRestaurant(restaurantID string) ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id string) error
}

package repositories

import (
	"fmt"

	"antar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMenuItemRepository is a GORM implementation of MenuItemRepository.
type GORMMenuItemRepository struct {
	db *gorm.DB
}

// NewGORMMenuItemRepository creates a new instance of GORMMenuItemRepository.
func NewGORMMenuItemRepository(db *gorm.DB) *GORMMenuItemRepository {
	return &GORMMenuItemRepository{
		db: db,
	}
}

// GetAll retrieves all menu items from the database.
func (r *GORMMenuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all menu items: %w", err)
	}
	return items, nil
}

// GetByRestaurant retrieves all menu items offered by a restaurant.
func (r *GORMMenuItemRepository) GetByRestaurant(restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu items for restaurant %s: %w", restaurantID, err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID from the database.
func (r *GORMMenuItemRepository) GetByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("menu item with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get menu item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Create creates a new menu item in the database.
func (r *GORMMenuItemRepository) Create(item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Update updates an existing menu item in the database.
func (r *GORMMenuItemRepository) Update(item *models.MenuItem) error {
	res := r.db.Save(item) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item with ID %s not found for update", item.ID)
	}
	return nil
}

// Delete deletes a menu item by its ID from the database.
func (r *GORMMenuItemRepository) Delete(id string) error {
	res := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item with ID %s not found for deletion", id)
	}
	return nil
}

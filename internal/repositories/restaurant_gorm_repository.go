package repositories

import (
	"fmt"

	"antar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRestaurantRepository is a GORM implementation of RestaurantRepository.
type GORMRestaurantRepository struct {
	db *gorm.DB
}

// NewGORMRestaurantRepository creates a new instance of GORMRestaurantRepository.
func NewGORMRestaurantRepository(db *gorm.DB) *GORMRestaurantRepository {
	return &GORMRestaurantRepository{
		db: db,
	}
}

// GetAll retrieves all restaurants from the database.
func (r *GORMRestaurantRepository) GetAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to get all restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID retrieves a single restaurant by its ID from the database.
func (r *GORMRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("restaurant with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get restaurant by ID %s: %w", id, err)
	}
	return &restaurant, nil
}

// Create creates a new restaurant in the database.
func (r *GORMRestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if err := r.db.Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// Update updates an existing restaurant in the database.
func (r *GORMRestaurantRepository) Update(restaurant *models.Restaurant) error {
	res := r.db.Save(restaurant) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %s not found for update", restaurant.ID)
	}
	return nil
}

// Delete deletes a restaurant by its ID from the database.
func (r *GORMRestaurantRepository) Delete(id string) error {
	res := r.db.Delete(&models.Restaurant{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %s not found for deletion", id)
	}
	return nil
}

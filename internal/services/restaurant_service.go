package services

import (
	"fmt"

	"antar/internal/models"
	"antar/internal/repositories"
)

// RestaurantService handles business logic for restaurants.
type RestaurantService struct {
	repo repositories.RestaurantRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(repo repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{
		repo: repo,
	}
}

// GetAllRestaurants retrieves all restaurants.
func (s *RestaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	return s.repo.GetAll()
}

// GetRestaurantByID retrieves a single restaurant by its ID.
func (s *RestaurantService) GetRestaurantByID(id string) (*models.Restaurant, error) {
	return s.repo.GetByID(id)
}

// CreateRestaurant creates a new restaurant. New restaurants always
// start unverified; only VerifyRestaurant flips the flag.
func (s *RestaurantService) CreateRestaurant(restaurant *models.Restaurant) error {
	restaurant.Verified = false
	return s.repo.Create(restaurant)
}

// UpdateRestaurant updates an existing restaurant.
func (s *RestaurantService) UpdateRestaurant(restaurant *models.Restaurant) error {
	return s.repo.Update(restaurant)
}

// VerifyRestaurant marks a restaurant as verified by a platform admin.
func (s *RestaurantService) VerifyRestaurant(id string) (*models.Restaurant, error) {
	restaurant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant.Verified {
		return restaurant, nil
	}
	restaurant.Verified = true
	if err := s.repo.Update(restaurant); err != nil {
		return nil, fmt.Errorf("failed to verify restaurant %s: %w", id, err)
	}
	return restaurant, nil
}

// DeleteRestaurant deletes a restaurant by its ID.
func (s *RestaurantService) DeleteRestaurant(id string) error {
	return s.repo.Delete(id)
}

package repositories

import (
	"fmt"
	"sync"

	"antar/internal/models"

	"github.com/google/uuid"
)

// MockMenuItemRepository is an in-memory implementation of MenuItemRepository.
type MockMenuItemRepository struct {
	items map[string]models.MenuItem
	mu    sync.RWMutex
}

// NewMockMenuItemRepository creates a new instance of MockMenuItemRepository.
func NewMockMenuItemRepository() *MockMenuItemRepository {
	return &MockMenuItemRepository{
		items: make(map[string]models.MenuItem),
	}
}

// GetAll returns all menu items.
func (r *MockMenuItemRepository) GetAll() ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByRestaurant returns all menu items offered by a restaurant.
func (r *MockMenuItemRepository) GetByRestaurant(restaurantID string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.MenuItem, 0)
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			itemList = append(itemList, item)
		}
	}
	return itemList, nil
}

// GetByID returns a menu item by its ID.
func (r *MockMenuItemRepository) GetByID(id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("menu item with ID %s not found", id)
	}
	return &item, nil
}

// Create adds a new menu item.
func (r *MockMenuItemRepository) Create(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Update modifies an existing menu item.
func (r *MockMenuItemRepository) Update(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("menu item with ID %s not found for update", item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a menu item by its ID.
func (r *MockMenuItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	if !ok {
		return fmt.Errorf("menu item with ID %s not found for deletion", id)
	}
	delete(r.items, id)
	return nil
}

package repositories

import (
	"context"
	"sync"
	"time"

	"antar/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the customer's cart, or (nil, nil) when none exists.
func (r *MockCartRepository) Get(_ context.Context, customerID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[customerID]
	if !ok {
		return nil, nil
	}
	return &cart, nil
}

// Save stores the cart keyed by its customer ID.
func (r *MockCartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	r.carts[cart.CustomerID] = *cart
	return nil
}

// Delete removes the customer's cart if present.
func (r *MockCartRepository) Delete(_ context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, customerID)
	return nil
}

package repositories

import (
	"context"
	"fmt"

	"antar/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository. Each
// customer owns at most one row, keyed by customer ID.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Get retrieves the customer's cart, or (nil, nil) when none exists.
func (r *GORMCartRepository) Get(ctx context.Context, customerID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "customer_id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart for customer %s: %w", customerID, err)
	}
	return &cart, nil
}

// Save upserts the cart row for the cart's customer.
func (r *GORMCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	if err := r.db.WithContext(ctx).Save(cart).Error; err != nil {
		return fmt.Errorf("failed to save cart for customer %s: %w", cart.CustomerID, err)
	}
	return nil
}

// Delete removes the customer's cart. Deleting a missing cart is not an
// error, matching the "no cart equals empty cart" rule.
func (r *GORMCartRepository) Delete(ctx context.Context, customerID string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Cart{}, "customer_id = ?", customerID).Error; err != nil {
		return fmt.Errorf("failed to delete cart for customer %s: %w", customerID, err)
	}
	return nil
}

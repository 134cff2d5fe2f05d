package repositories

import (
	"context"

	"antar/internal/models"
)

// CartRepository defines the interface for cart data access. Get
// returns (nil, nil) when the customer has no cart; callers treat that
// the same as an empty cart. Methods take a context because the redis
// backend talks to the network.
type CartRepository interface {
	Get(ctx context.Context, customerID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, customerID string) error
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"antar/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCartRepository stores each cart as a JSON blob under a
// per-customer key. Carts expire after the configured TTL, which is
// fine because a cart is a staging area, not a system of record.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartRepository creates a new instance of RedisCartRepository.
func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCartRepository) key(customerID string) string {
	return fmt.Sprintf("cart:customer:%s", customerID)
}

// Get retrieves the customer's cart, or (nil, nil) when none exists.
func (r *RedisCartRepository) Get(ctx context.Context, customerID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.key(customerID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for customer %s: %w", customerID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for customer %s: %w", customerID, err)
	}
	return &cart, nil
}

// Save writes the cart blob and refreshes its TTL.
func (r *RedisCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart for customer %s: %w", cart.CustomerID, err)
	}
	if err := r.client.Set(ctx, r.key(cart.CustomerID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for customer %s: %w", cart.CustomerID, err)
	}
	return nil
}

// Delete removes the customer's cart key.
func (r *RedisCartRepository) Delete(ctx context.Context, customerID string) error {
	if err := r.client.Del(ctx, r.key(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for customer %s: %w", customerID, err)
	}
	return nil
}

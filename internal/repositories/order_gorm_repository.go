package repositories

import (
	"fmt"
	"time"

	"antar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetByID retrieves a single order by its ID from the database.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByCustomer retrieves all orders belonging to a customer, newest first.
func (r *GORMOrderRepository) GetByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

// Create creates a new order in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateItems replaces the item snapshot of an order. A struct update
// is used so the JSON serializer on Items applies.
func (r *GORMOrderRepository) UpdateItems(id string, items []models.OrderItem) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Select("items", "updated_at").
		Updates(&models.Order{Items: items, UpdatedAt: time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to update items for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for update", id)
	}
	return nil
}

// UpdateStatusIf performs the conditional status update in a single
// statement, so two racing updates cannot both succeed.
func (r *GORMOrderRepository) UpdateStatusIf(id string, fromStatus string, toStatus string) error {
	res := r.db.Model(&models.Order{}).Where("id = ? AND status = ?", id, fromStatus).Updates(map[string]interface{}{
		"status":     toStatus,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

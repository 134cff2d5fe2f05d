package repositories

import (
	"errors"

	"antar/internal/models"
)

// ErrStatusChanged is returned by UpdateStatusIf when the stored status
// no longer matches the status the caller decided on, i.e. a concurrent
// update won the race.
var ErrStatusChanged = errors.New("order status changed concurrently")

// OrderRepository defines the interface for order data access. Orders
// are never deleted, so there is no Delete.
type OrderRepository interface {
	GetByID(id string) (*models.Order, error)
	GetByCustomer(customerID string) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateItems(id string, items []models.OrderItem) error
	// UpdateStatusIf sets the status to toStatus only while the stored
	// status still equals fromStatus, returning ErrStatusChanged on a
	// mismatch.
	UpdateStatusIf(id string, fromStatus string, toStatus string) error
}

package repositories

import (
	"antar/internal/models"
)

// PaymentRepository defines the interface for payment data access.
// FindVerified returns (nil, nil) when no matching payment exists; it
// only considers completed payments that no order has consumed yet.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByCustomer(customerID string) ([]models.Payment, error)
	UpdateStatus(id string, status string) error
	FindVerified(customerID string, amountCents int64) (*models.Payment, error)
	AttachOrder(paymentID string, orderID string) error
}

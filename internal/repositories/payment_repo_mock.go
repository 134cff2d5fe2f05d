package repositories

import (
	"fmt"
	"sync"
	"time"

	"antar/internal/models"

	"github.com/google/uuid"
)

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
type MockPaymentRepository struct {
	payments map[string]models.Payment
	mu       sync.RWMutex
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]models.Payment),
	}
}

// Create adds a new payment record.
func (r *MockPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	r.payments[payment.ID] = *payment
	return nil
}

// GetByID returns a payment by its ID.
func (r *MockPaymentRepository) GetByID(id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment with ID %s not found", id)
	}
	return &payment, nil
}

// GetByCustomer returns all payments made by a customer.
func (r *MockPaymentRepository) GetByCustomer(customerID string) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paymentList := make([]models.Payment, 0)
	for _, payment := range r.payments {
		if payment.CustomerID == customerID {
			paymentList = append(paymentList, payment)
		}
	}
	return paymentList, nil
}

// UpdateStatus updates the status of a payment record.
func (r *MockPaymentRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment with ID %s not found for status update", id)
	}
	payment.Status = status
	payment.UpdatedAt = time.Now()
	r.payments[id] = payment
	return nil
}

// FindVerified looks for a completed, not-yet-consumed payment matching
// the customer and exact amount.
func (r *MockPaymentRepository) FindVerified(customerID string, amountCents int64) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, payment := range r.payments {
		if payment.CustomerID == customerID &&
			payment.AmountCents == amountCents &&
			payment.Status == models.PaymentCompleted &&
			payment.OrderID == "" {
			return &payment, nil
		}
	}
	return nil, nil
}

// AttachOrder marks a payment as consumed by the given order.
func (r *MockPaymentRepository) AttachOrder(paymentID string, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok || payment.OrderID != "" {
		return fmt.Errorf("payment with ID %s not found or already consumed", paymentID)
	}
	payment.OrderID = orderID
	payment.UpdatedAt = time.Now()
	r.payments[paymentID] = payment
	return nil
}

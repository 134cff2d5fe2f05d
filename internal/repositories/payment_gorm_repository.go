package repositories

import (
	"fmt"
	"time"

	"antar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// Create creates a new payment record in the database.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByID retrieves a single payment by its ID from the database.
func (r *GORMPaymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get payment by ID %s: %w", id, err)
	}
	return &payment, nil
}

// GetByCustomer retrieves all payments made by a customer, newest first.
func (r *GORMPaymentRepository) GetByCustomer(customerID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for customer %s: %w", customerID, err)
	}
	return payments, nil
}

// UpdateStatus updates the status of a payment record.
func (r *GORMPaymentRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update status for payment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment with ID %s not found for status update", id)
	}
	return nil
}

// FindVerified looks for a completed, not-yet-consumed payment matching
// the customer and the exact amount.
func (r *GORMPaymentRepository) FindVerified(customerID string, amountCents int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("customer_id = ? AND amount_cents = ? AND status = ? AND order_id = ?",
		customerID, amountCents, models.PaymentCompleted, "").First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find verified payment for customer %s: %w", customerID, err)
	}
	return &payment, nil
}

// AttachOrder marks a payment as consumed by the given order. The
// order_id guard makes consumption single-shot even under races.
func (r *GORMPaymentRepository) AttachOrder(paymentID string, orderID string) error {
	res := r.db.Model(&models.Payment{}).Where("id = ? AND order_id = ?", paymentID, "").Updates(map[string]interface{}{
		"order_id":   orderID,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to attach order %s to payment %s: %w", orderID, paymentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment with ID %s not found or already consumed", paymentID)
	}
	return nil
}

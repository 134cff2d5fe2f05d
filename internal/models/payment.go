package models

import "time"

// Payment statuses and providers.
const (
	PaymentCreated   = "created"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"

	ProviderPayPal  = "paypal"
	ProviderPayHere = "payhere"
)

// Payment is a payment record produced by the payment capture flow.
// OrderID stays empty until the payment is consumed by an order
// placement, so a single payment cannot back two orders.
type Payment struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID           string    `json:"order_id" gorm:"index;type:varchar(36)"`
	CustomerID        string    `json:"customer_id" gorm:"index;type:varchar(36)"`
	AmountCents       int64     `json:"amount_cents" validate:"required,gt=0"`
	Status            string    `json:"status" gorm:"type:varchar(16)"`
	Provider          string    `json:"provider" gorm:"type:varchar(16)" validate:"required,oneof=paypal payhere"`
	ProviderPaymentID string    `json:"provider_payment_id" gorm:"type:varchar(64)"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

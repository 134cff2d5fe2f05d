package models

import (
	"strings"
	"time"
)

// Order statuses, canonical lower-case form. Input from clients is
// normalized with NormalizeStatus before any comparison.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusPreparing  = "preparing"
	StatusCompleted  = "completed"
	StatusAccepted   = "accepted"
	StatusDispatched = "dispatched"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// AllStatuses lists every order status in lifecycle order.
var AllStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusCompleted,
	StatusAccepted,
	StatusDispatched,
	StatusDelivered,
	StatusCancelled,
}

// NormalizeStatus lower-cases a client-supplied status and reports
// whether it names a known status.
func NormalizeStatus(s string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, known := range AllStatuses {
		if normalized == known {
			return normalized, true
		}
	}
	return normalized, false
}

// OrderItem represents a single item within an order. UnitPriceCents is
// the menu item price captured at placement time.
type OrderItem struct {
	MenuItemID     string `json:"menu_item_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gte=1"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// Order represents a placed customer order tracked through the delivery
// lifecycle. Items and TotalCents are a snapshot taken at placement;
// orders are never deleted, delivered and cancelled are terminal.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID   string      `json:"customer_id" gorm:"index;type:varchar(36)"`
	RestaurantID string      `json:"restaurant_id" gorm:"index;type:varchar(36)"`
	Items        []OrderItem `json:"items" gorm:"serializer:json"`
	TotalCents   int64       `json:"total_cents"`
	Status       string      `json:"status" gorm:"type:varchar(16)"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

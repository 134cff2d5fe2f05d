package models

import "gorm.io/gorm"

// MenuItem represents a sellable item on a restaurant's menu. Prices
// are stored in integer minor units (cents) so payment amounts can be
// matched exactly, without floating-point drift.
type MenuItem struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	RestaurantID string `json:"restaurant_id" gorm:"index;type:varchar(36)" validate:"required"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	PriceCents   int64  `json:"price_cents" validate:"required,gt=0"`
	ImageURL     string `json:"image_url" validate:"omitempty,max=500"`
	Available    bool   `json:"available"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

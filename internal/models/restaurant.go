package models

import "gorm.io/gorm"

// Restaurant represents a restaurant listed on the platform.
// Verified is only ever set by a platform admin.
type Restaurant struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	OwnerID    string `json:"owner_id" gorm:"type:varchar(36)" validate:"required"`
	Location   string `json:"location" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	IsOpen     bool   `json:"is_open"`
	Verified   bool   `json:"verified"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

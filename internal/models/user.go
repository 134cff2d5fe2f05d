package models

import "gorm.io/gorm"

// Role names used in JWT claims and the order status transition matrix.
const (
	RoleCustomer        = "customer"
	RoleRestaurantAdmin = "restaurant_admin"
	RoleDeliveryPerson  = "delivery_person"
	RoleAdmin           = "admin"
)

// User represents a platform account. Customers, restaurant admins,
// delivery people and platform admins share the same record shape.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(32)" validate:"omitempty,oneof=customer restaurant_admin delivery_person admin"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

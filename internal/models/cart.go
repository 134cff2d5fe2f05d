package models

import "time"

// CartItem is a (menu item, quantity) pair inside a cart. A menu item
// appears at most once per cart; adding it again merges quantities.
type CartItem struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}

// Cart is the per-customer staging collection of menu items awaiting
// order placement. It is created lazily on first add and deleted when
// an order is successfully placed from it; a missing cart and an empty
// cart are equivalent for reads.
type Cart struct {
	CustomerID string     `json:"customer_id" gorm:"primaryKey;type:varchar(36)"`
	Items      []CartItem `json:"items" gorm:"serializer:json"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ResolvedCartItem is a cart entry with its menu item details attached,
// the way getCart returns the cart to clients.
type ResolvedCartItem struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

// ResolvedCart is a cart with every item reference resolved against the
// menu catalog.
type ResolvedCart struct {
	CustomerID string             `json:"customer_id"`
	Items      []ResolvedCartItem `json:"items"`
}

// TotalCents sums unit price times quantity over the resolved items.
func (c *ResolvedCart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.MenuItem.PriceCents * int64(item.Quantity)
	}
	return total
}

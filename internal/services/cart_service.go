package services

import (
	"context"
	"log"
	"strings"
	"time"

	"antar/internal/models"
	"antar/internal/repositories"
)

// CartService handles business logic for per-customer carts.
type CartService struct {
	cartRepo repositories.CartRepository
	menuRepo repositories.MenuItemRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, menuRepo repositories.MenuItemRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
	}
}

// AddItem adds a menu item to the customer's cart, creating the cart
// lazily on first add. Adding an item already in the cart increments
// its quantity instead of producing a duplicate entry.
func (s *CartService) AddItem(ctx context.Context, customerID, menuItemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, NewDomainError(KindValidation, "quantity must be at least 1")
	}

	item, err := s.menuRepo.GetByID(menuItemID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, WrapDomainError(KindNotFound, err, "menu item %s not found", menuItemID)
		}
		return nil, WrapDomainError(KindUpstream, err, "could not look up menu item %s", menuItemID)
	}
	if !item.Available {
		return nil, NewDomainError(KindValidation, "menu item %s is not available", menuItemID)
	}

	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not load cart for customer %s", customerID)
	}
	if cart == nil {
		cart = &models.Cart{CustomerID: customerID, CreatedAt: time.Now()}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{MenuItemID: menuItemID, Quantity: quantity})
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not save cart for customer %s", customerID)
	}
	return cart, nil
}

// GetCart returns the customer's cart with item references resolved to
// menu item details. Absence of a cart is a valid empty state, never an
// error. Entries whose menu item has since disappeared from the catalog
// are skipped, mirroring how a dangling reference resolves to nothing.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*models.ResolvedCart, error) {
	resolved := &models.ResolvedCart{CustomerID: customerID, Items: []models.ResolvedCartItem{}}

	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not load cart for customer %s", customerID)
	}
	if cart == nil {
		return resolved, nil
	}

	for _, cartItem := range cart.Items {
		item, err := s.menuRepo.GetByID(cartItem.MenuItemID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				log.Printf("Cart for customer %s references missing menu item %s, skipping", customerID, cartItem.MenuItemID)
				continue
			}
			return nil, WrapDomainError(KindUpstream, err, "could not resolve menu item %s", cartItem.MenuItemID)
		}
		resolved.Items = append(resolved.Items, models.ResolvedCartItem{
			MenuItem: *item,
			Quantity: cartItem.Quantity,
		})
	}
	return resolved, nil
}

// DecreaseItem lowers the quantity of a cart entry by one. An entry at
// quantity 1 is removed entirely and nil is returned instead of a
// zero-quantity entry.
func (s *CartService) DecreaseItem(ctx context.Context, customerID, menuItemID string) (*models.CartItem, error) {
	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not load cart for customer %s", customerID)
	}
	if cart == nil {
		return nil, NewDomainError(KindNotFound, "cart not found for customer %s", customerID)
	}

	for i := range cart.Items {
		if cart.Items[i].MenuItemID != menuItemID {
			continue
		}
		if cart.Items[i].Quantity > 1 {
			cart.Items[i].Quantity--
			result := cart.Items[i]
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return nil, WrapDomainError(KindUpstream, err, "could not save cart for customer %s", customerID)
			}
			return &result, nil
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, WrapDomainError(KindUpstream, err, "could not save cart for customer %s", customerID)
		}
		return nil, nil
	}
	return nil, NewDomainError(KindNotFound, "item %s not found in cart", menuItemID)
}

// RemoveItem deletes a cart entry regardless of quantity.
func (s *CartService) RemoveItem(ctx context.Context, customerID, menuItemID string) (*models.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not load cart for customer %s", customerID)
	}
	if cart == nil {
		return nil, NewDomainError(KindNotFound, "cart not found for customer %s", customerID)
	}

	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return nil, WrapDomainError(KindUpstream, err, "could not save cart for customer %s", customerID)
			}
			return cart, nil
		}
	}
	return nil, NewDomainError(KindNotFound, "item %s not found in cart", menuItemID)
}

// Clear deletes the customer's cart outright, used after an order is
// placed from it.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	if err := s.cartRepo.Delete(ctx, customerID); err != nil {
		return WrapDomainError(KindUpstream, err, "could not clear cart for customer %s", customerID)
	}
	return nil
}

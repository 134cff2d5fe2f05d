package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"antar/internal/models"
	"antar/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message
// broker. Satisfied by *rabbitmq.Client; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService orchestrates cart consolidation, the payment gate,
// order creation and the status transition engine. It owns no state;
// all side effects go through the repositories.
type OrderService struct {
	orderRepo  repositories.OrderRepository
	cartSvc    *CartService
	paymentSvc *PaymentService
	mqClient   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartSvc *CartService, paymentSvc *PaymentService, mqClient EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		cartSvc:    cartSvc,
		paymentSvc: paymentSvc,
		mqClient:   mqClient,
	}
}

// PlaceOrder snapshots the customer's cart into a pending order after
// verifying a matching payment, then consumes the payment and clears
// the cart. Cart clearing happens after order creation; a failure there
// is logged and leaves the order in place.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string) (*models.Order, error) {
	cart, err := s.cartSvc.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, NewDomainError(KindEmptyCart, "cart is empty")
	}

	totalCents := cart.TotalCents()

	verified, err := s.paymentSvc.IsPaymentVerified(customerID, totalCents)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, NewDomainError(KindPaymentNotVerified, "no verified payment of %d cents for customer %s", totalCents, customerID)
	}

	// The restaurant owning the order is taken from the first cart item.
	restaurantID := cart.Items[0].MenuItem.RestaurantID

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		items = append(items, models.OrderItem{
			MenuItemID:     cartItem.MenuItem.ID,
			Quantity:       cartItem.Quantity,
			UnitPriceCents: cartItem.MenuItem.PriceCents,
		})
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Items:        items,
		TotalCents:   totalCents,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not create order for customer %s", customerID)
	}

	if err := s.paymentSvc.ConsumePayment(customerID, totalCents, order.ID); err != nil {
		log.Printf("Warning: order %s created but payment could not be consumed: %v", order.ID, err)
	}
	if err := s.cartSvc.Clear(ctx, customerID); err != nil {
		log.Printf("Warning: order %s created but cart for customer %s could not be cleared: %v", order.ID, customerID, err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID":     order.ID,
		"customerID":  order.CustomerID,
		"restaurant":  order.RestaurantID,
		"status":      order.Status,
		"total_cents": order.TotalCents,
	})

	return order, nil
}

// ListMyOrders returns all orders belonging to a customer.
func (s *OrderService) ListMyOrders(customerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not list orders for customer %s", customerID)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, WrapDomainError(KindNotFound, err, "order %s not found", id)
		}
		return nil, WrapDomainError(KindUpstream, err, "could not load order %s", id)
	}
	return order, nil
}

// ModifyOrder replaces the item list of a pending order owned by the
// requesting customer. The total price is intentionally left untouched:
// it was frozen at placement time.
func (s *OrderService) ModifyOrder(orderID, customerID string, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, NewDomainError(KindValidation, "order must contain at least one item")
	}
	for _, item := range items {
		if item.MenuItemID == "" || item.Quantity < 1 {
			return nil, NewDomainError(KindValidation, "every item needs a menu item ID and a quantity of at least 1")
		}
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, NewDomainError(KindForbidden, "order %s does not belong to customer %s", orderID, customerID)
	}
	if order.Status != models.StatusPending {
		return nil, NewDomainError(KindInvalidState, "order %s is %s, only pending orders can be modified", orderID, order.Status)
	}

	if err := s.orderRepo.UpdateItems(orderID, items); err != nil {
		return nil, WrapDomainError(KindUpstream, err, "could not update items for order %s", orderID)
	}
	order.Items = items
	order.UpdatedAt = time.Now()
	return order, nil
}

// UpdateStatus moves an order through its lifecycle on behalf of an
// actor role, consulting the transition matrix. The store-side update
// is conditional on the status read here, so a concurrent transition
// surfaces as a conflict instead of silently winning.
func (s *OrderService) UpdateStatus(orderID, actorRole, requestedStatus string) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	normalized, known := models.NormalizeStatus(requestedStatus)
	if !known {
		return nil, NewDomainError(KindValidation, "unknown order status %q", requestedStatus)
	}

	if !CanTransition(actorRole, order.Status, normalized) {
		return nil, NewDomainError(KindForbidden, "role %s may not move order %s from %s to %s", actorRole, orderID, order.Status, normalized)
	}

	if err := s.orderRepo.UpdateStatusIf(orderID, order.Status, normalized); err != nil {
		if err == repositories.ErrStatusChanged {
			return nil, WrapDomainError(KindConflict, err, "order %s was updated concurrently", orderID)
		}
		return nil, WrapDomainError(KindUpstream, err, "could not update status for order %s", orderID)
	}

	s.publishEvent("order.status.updated", map[string]interface{}{
		"orderID": orderID,
		"from":    order.Status,
		"to":      normalized,
		"by_role": actorRole,
	})

	order.Status = normalized
	order.UpdatedAt = time.Now()
	return order, nil
}

// publishEvent sends an order event to the broker, best effort. A nil
// client (tests, broker down at startup) only logs.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

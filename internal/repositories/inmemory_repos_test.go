package repositories_test

import (
	"context"
	"testing"

	"antar/internal/models"
	"antar/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockOrderRepositoryStatusCAS(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	order := &models.Order{
		CustomerID: "cust-1",
		Status:     models.StatusPending,
		TotalCents: 2000,
	}
	assert.NoError(t, repo.Create(order))
	assert.NotEmpty(t, order.ID)

	// The conditional update succeeds while the observed status holds
	assert.NoError(t, repo.UpdateStatusIf(order.ID, models.StatusPending, models.StatusConfirmed))

	stored, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)

	// A second writer working from the stale pending status loses
	err = repo.UpdateStatusIf(order.ID, models.StatusPending, models.StatusCancelled)
	assert.ErrorIs(t, err, repositories.ErrStatusChanged)

	stored, err = repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

func TestMockOrderRepositoryItemsAndListing(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	first := &models.Order{CustomerID: "cust-1", Status: models.StatusPending}
	second := &models.Order{CustomerID: "cust-2", Status: models.StatusPending}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))

	items := []models.OrderItem{{MenuItemID: "item-1", Quantity: 2, UnitPriceCents: 900}}
	assert.NoError(t, repo.UpdateItems(first.ID, items))

	stored, err := repo.GetByID(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, items, stored.Items)

	mine, err := repo.GetByCustomer("cust-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = repo.GetByID("ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMockCartRepositoryRoundTrip(t *testing.T) {
	repo := repositories.NewMockCartRepository()
	ctx := context.Background()

	// Absence is (nil, nil), not an error
	cart, err := repo.Get(ctx, "cust-1")
	assert.NoError(t, err)
	assert.Nil(t, cart)

	assert.NoError(t, repo.Save(ctx, &models.Cart{
		CustomerID: "cust-1",
		Items:      []models.CartItem{{MenuItemID: "item-1", Quantity: 2}},
	}))

	cart, err = repo.Get(ctx, "cust-1")
	assert.NoError(t, err)
	if assert.NotNil(t, cart) {
		assert.Len(t, cart.Items, 1)
	}

	assert.NoError(t, repo.Delete(ctx, "cust-1"))
	cart, err = repo.Get(ctx, "cust-1")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestMockPaymentRepositoryVerificationGate(t *testing.T) {
	repo := repositories.NewMockPaymentRepository()

	payment := &models.Payment{
		CustomerID:  "cust-1",
		AmountCents: 2000,
		Status:      models.PaymentCreated,
		Provider:    models.ProviderPayPal,
	}
	assert.NoError(t, repo.Create(payment))

	// Not verified until completed
	found, err := repo.FindVerified("cust-1", 2000)
	assert.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, repo.UpdateStatus(payment.ID, models.PaymentCompleted))

	// Amount must match exactly
	found, err = repo.FindVerified("cust-1", 1999)
	assert.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindVerified("cust-1", 2000)
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, payment.ID, found.ID)
	}

	// Consuming the payment removes it from the verified pool
	assert.NoError(t, repo.AttachOrder(payment.ID, "order-1"))

	found, err = repo.FindVerified("cust-1", 2000)
	assert.NoError(t, err)
	assert.Nil(t, found)

	// A payment cannot be consumed twice
	assert.Error(t, repo.AttachOrder(payment.ID, "order-2"))
}

func TestMockMenuItemRepositoryCRUD(t *testing.T) {
	repo := repositories.NewMockMenuItemRepository()

	item := &models.MenuItem{RestaurantID: "rest-1", Name: "Egg Hoppers", PriceCents: 450, Available: true}
	assert.NoError(t, repo.Create(item))
	assert.NotEmpty(t, item.ID)

	stored, err := repo.GetByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Egg Hoppers", stored.Name)

	byRestaurant, err := repo.GetByRestaurant("rest-1")
	assert.NoError(t, err)
	assert.Len(t, byRestaurant, 1)

	item.PriceCents = 500
	assert.NoError(t, repo.Update(item))
	stored, err = repo.GetByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), stored.PriceCents)

	assert.NoError(t, repo.Delete(item.ID))
	_, err = repo.GetByID(item.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

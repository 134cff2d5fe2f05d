package services_test

import (
	"context"
	"errors"
	"testing"

	"antar/internal/models"
	"antar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddItemCreatesCartLazily(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockMenuRepo.On("GetByID", "item-1").Return(&models.MenuItem{
		ID: "item-1", Name: "Kottu Roti", PriceCents: 1200, Available: true,
	}, nil)
	mockCartRepo.On("Get", ctx, "cust-1").Return(nil, nil)
	mockCartRepo.On("Save", ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := cartService.AddItem(ctx, "cust-1", "item-1", 2)

	assert.NoError(t, err)
	assert.Equal(t, "cust-1", cart.CustomerID)
	if assert.Len(t, cart.Items, 1) {
		assert.Equal(t, "item-1", cart.Items[0].MenuItemID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	}
	mockCartRepo.AssertExpectations(t)
	mockMenuRepo.AssertExpectations(t)
}

func TestAddItemMergesExistingEntry(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockMenuRepo.On("GetByID", "item-1").Return(&models.MenuItem{
		ID: "item-1", PriceCents: 1200, Available: true,
	}, nil)
	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items:      []models.CartItem{{MenuItemID: "item-1", Quantity: 1}},
	}, nil)
	mockCartRepo.On("Save", ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := cartService.AddItem(ctx, "cust-1", "item-1", 3)

	assert.NoError(t, err)
	if assert.Len(t, cart.Items, 1) {
		assert.Equal(t, 4, cart.Items[0].Quantity)
	}
	mockCartRepo.AssertExpectations(t)
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)

	_, err := cartService.AddItem(context.Background(), "cust-1", "item-1", 0)

	assert.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
	mockMenuRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockCartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)

	mockMenuRepo.On("GetByID", "ghost").Return(nil, errors.New("menu item with ID ghost not found"))

	_, err := cartService.AddItem(context.Background(), "cust-1", "ghost", 1)

	assert.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestAddItemUnavailableMenuItem(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)

	mockMenuRepo.On("GetByID", "item-86").Return(&models.MenuItem{
		ID: "item-86", Available: false,
	}, nil)

	_, err := cartService.AddItem(context.Background(), "cust-1", "item-86", 1)

	assert.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestGetCartEmptyWhenAbsent(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(nil, nil)

	resolved, err := cartService.GetCart(ctx, "cust-1")

	assert.NoError(t, err)
	assert.Equal(t, "cust-1", resolved.CustomerID)
	assert.Empty(t, resolved.Items)
	assert.Equal(t, int64(0), resolved.TotalCents())
}

func TestGetCartResolvesItemsAndTotal(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items: []models.CartItem{
			{MenuItemID: "item-1", Quantity: 2},
			{MenuItemID: "item-2", Quantity: 1},
		},
	}, nil)
	mockMenuRepo.On("GetByID", "item-1").Return(&models.MenuItem{ID: "item-1", PriceCents: 1000, Available: true}, nil)
	mockMenuRepo.On("GetByID", "item-2").Return(&models.MenuItem{ID: "item-2", PriceCents: 550, Available: true}, nil)

	resolved, err := cartService.GetCart(ctx, "cust-1")

	assert.NoError(t, err)
	assert.Len(t, resolved.Items, 2)
	assert.Equal(t, int64(2550), resolved.TotalCents())
}

func TestGetCartSkipsDanglingMenuReference(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items: []models.CartItem{
			{MenuItemID: "gone", Quantity: 1},
			{MenuItemID: "item-2", Quantity: 1},
		},
	}, nil)
	mockMenuRepo.On("GetByID", "gone").Return(nil, errors.New("menu item with ID gone not found"))
	mockMenuRepo.On("GetByID", "item-2").Return(&models.MenuItem{ID: "item-2", PriceCents: 700, Available: true}, nil)

	resolved, err := cartService.GetCart(ctx, "cust-1")

	assert.NoError(t, err)
	if assert.Len(t, resolved.Items, 1) {
		assert.Equal(t, "item-2", resolved.Items[0].MenuItem.ID)
	}
	assert.Equal(t, int64(700), resolved.TotalCents())
}

func TestDecreaseItemDecrements(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items:      []models.CartItem{{MenuItemID: "item-1", Quantity: 3}},
	}, nil)
	mockCartRepo.On("Save", ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	item, err := cartService.DecreaseItem(ctx, "cust-1", "item-1")

	assert.NoError(t, err)
	if assert.NotNil(t, item) {
		assert.Equal(t, 2, item.Quantity)
	}
}

func TestDecreaseItemRemovesAtQuantityOne(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items:      []models.CartItem{{MenuItemID: "item-1", Quantity: 1}},
	}, nil)
	mockCartRepo.On("Save", ctx, mock.MatchedBy(func(cart *models.Cart) bool {
		return len(cart.Items) == 0
	})).Return(nil)

	item, err := cartService.DecreaseItem(ctx, "cust-1", "item-1")

	assert.NoError(t, err)
	assert.Nil(t, item)
	mockCartRepo.AssertExpectations(t)
}

func TestDecreaseItemMissingEntry(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{CustomerID: "cust-1"}, nil)

	_, err := cartService.DecreaseItem(ctx, "cust-1", "item-1")

	assert.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestRemoveItemDeletesEntry(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(&models.Cart{
		CustomerID: "cust-1",
		Items: []models.CartItem{
			{MenuItemID: "item-1", Quantity: 5},
			{MenuItemID: "item-2", Quantity: 1},
		},
	}, nil)
	mockCartRepo.On("Save", ctx, mock.AnythingOfType("*models.Cart")).Return(nil)

	cart, err := cartService.RemoveItem(ctx, "cust-1", "item-1")

	assert.NoError(t, err)
	if assert.Len(t, cart.Items, 1) {
		assert.Equal(t, "item-2", cart.Items[0].MenuItemID)
	}
}

func TestRemoveItemNoCart(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Get", ctx, "cust-1").Return(nil, nil)

	_, err := cartService.RemoveItem(ctx, "cust-1", "item-1")

	assert.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestClearCart(t *testing.T) {
	mockCartRepo := new(MockCartRepository)
	mockMenuRepo := new(MockMenuItemRepository)
	cartService := services.NewCartService(mockCartRepo, mockMenuRepo)
	ctx := context.Background()

	mockCartRepo.On("Delete", ctx, "cust-1").Return(nil)

	assert.NoError(t, cartService.Clear(ctx, "cust-1"))
	mockCartRepo.AssertExpectations(t)
}

package services

import (
	"testing"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiningService(menu []models.MenuItem, orders []models.Order) *DiningService {
	return NewDiningService(&storage.Store{MenuItems: menu, Orders: orders})
}

func TestNextOrderStatusChain(t *testing.T) {
	cases := []struct {
		from models.OrderStatus
		want models.OrderStatus
		ok   bool
	}{
		{models.OrderPending, models.OrderPreparing, true},
		{models.OrderPreparing, models.OrderReady, true},
		{models.OrderReady, models.OrderServed, true},
		{models.OrderServed, "", false},
		{models.OrderCancelled, "", false},
	}
	for _, tc := range cases {
		next, ok := models.NextOrderStatus(tc.from)
		assert.Equal(t, tc.ok, ok, "from %s", tc.from)
		assert.Equal(t, tc.want, next, "from %s", tc.from)
	}
}

func TestCreateOrderPricesFromMenu(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "m1", Name: "Breakfast", Price: 15.99, Category: models.CategoryBreakfast, Available: true},
		{ID: "m2", Name: "Salmon", Price: 28.99, Category: models.CategoryDinner, Available: true},
	}
	svc := newDiningService(menu, nil)

	order, err := svc.CreateOrder(models.Order{
		RoomID: "2",
		Items: []models.OrderItem{
			{MenuItemID: "m1", Quantity: 2},
			{MenuItemID: "m2", Quantity: 1},
		},
		// Client-sent state is replaced.
		Status:      models.OrderServed,
		TotalAmount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 2*15.99+28.99, order.TotalAmount, 1e-9)
	assert.False(t, order.OrderTime.IsZero())
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "m1", Name: "Breakfast", Price: 15.99, Available: true},
		{ID: "m2", Name: "Soup", Price: 9.50, Available: false},
	}
	svc := newDiningService(menu, nil)
	var verr *ValidationError

	_, err := svc.CreateOrder(models.Order{})
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateOrder(models.Order{Items: []models.OrderItem{{MenuItemID: "nope", Quantity: 1}}})
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateOrder(models.Order{Items: []models.OrderItem{{MenuItemID: "m2", Quantity: 1}}})
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateOrder(models.Order{Items: []models.OrderItem{{MenuItemID: "m1", Quantity: 0}}})
	require.ErrorAs(t, err, &verr)

	assert.Empty(t, svc.ListOrders(OrderFilter{}))
}

func TestAdvanceOrder(t *testing.T) {
	svc := newDiningService(nil, []models.Order{{ID: "o1", Status: models.OrderPending}})

	for _, want := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderServed} {
		order, err := svc.AdvanceOrder("o1")
		require.NoError(t, err)
		assert.Equal(t, want, order.Status)
	}

	_, err := svc.AdvanceOrder("o1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.AdvanceOrder("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetOrderStatusRejectsSkips(t *testing.T) {
	svc := newDiningService(nil, []models.Order{{ID: "o1", Status: models.OrderPending}})

	_, err := svc.SetOrderStatus("o1", models.OrderReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	order, err := svc.SetOrderStatus("o1", models.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, order.Status)
}

func TestCancelOrder(t *testing.T) {
	svc := newDiningService(nil, []models.Order{
		{ID: "o1", Status: models.OrderReady},
		{ID: "o2", Status: models.OrderServed},
	})

	order, err := svc.CancelOrder("o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)

	// Served orders cannot be cancelled, nor re-cancelled ones.
	_, err = svc.CancelOrder("o2")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.CancelOrder("o1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestToggleMenuItemAvailability(t *testing.T) {
	svc := newDiningService([]models.MenuItem{{ID: "m1", Name: "Soup", Price: 9, Available: true}}, nil)

	item, err := svc.ToggleMenuItemAvailability("m1")
	require.NoError(t, err)
	assert.False(t, item.Available)

	item, err = svc.ToggleMenuItemAvailability("m1")
	require.NoError(t, err)
	assert.True(t, item.Available)
}

func TestMenuListFilters(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "1", Name: "Continental Breakfast", Category: models.CategoryBreakfast, Available: true},
		{ID: "2", Name: "Grilled Salmon", Category: models.CategoryDinner, Available: true},
		{ID: "3", Name: "Lava Cake", Category: models.CategoryDinner, Available: false},
	}
	svc := newDiningService(menu, nil)

	assert.Len(t, svc.ListMenu(MenuFilter{}), 3)
	assert.Len(t, svc.ListMenu(MenuFilter{Category: models.CategoryDinner}), 2)

	available := true
	got := svc.ListMenu(MenuFilter{Category: models.CategoryDinner, Available: &available})
	require.Len(t, got, 1)
	assert.Equal(t, "Grilled Salmon", got[0].Name)

	got = svc.ListMenu(MenuFilter{Search: "salmon"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestMenuAndOrderStats(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "1", Category: models.CategoryBreakfast, Available: true},
		{ID: "2", Category: models.CategoryDinner, Available: true},
		{ID: "3", Category: models.CategoryDinner, Available: false},
	}
	orders := []models.Order{
		{ID: "1", Status: models.OrderPending},
		{ID: "2", Status: models.OrderPreparing},
		{ID: "3", Status: models.OrderServed},
		{ID: "4", Status: models.OrderCancelled},
	}
	svc := newDiningService(menu, orders)

	ms := svc.MenuStats()
	assert.Equal(t, 3, ms.Total)
	assert.Equal(t, 2, ms.Available)
	assert.Equal(t, 1, ms.Unavailable)
	assert.Equal(t, 2, ms.Categories)

	os := svc.OrderStats()
	assert.Equal(t, 1, os.Pending)
	assert.Equal(t, 1, os.Preparing)
	assert.Equal(t, 0, os.Ready)
	assert.Equal(t, 1, os.Served)
}

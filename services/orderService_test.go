package services

import (
	"context"
	"testing"

	"github.com/ammafood/amma-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Temple Street",
	}
}

func cartFor(svc *Service, quantities map[string]int) []models.CartItem {
	var items []models.CartItem
	for _, item := range svc.GetMenu(context.Background()) {
		if qty, ok := quantities[item.ID]; ok {
			items = append(items, models.CartItem{MenuItem: item, Quantity: qty})
		}
	}
	return items
}

func TestCreateOrderFreezesTotal(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	// 2 x Butter Chicken (320) + 1 x Garlic Naan (60)
	order := models.Order{
		Customer: validCustomer(),
		Items:    cartFor(svc, map[string]int{"1": 2, "4": 1}),
	}
	id, err := svc.CreateOrder(ctx, &order)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 700.0, order.TotalAmount)

	// Editing the menu price afterwards must not touch the stored order.
	butterChicken := order.Items[0].MenuItem
	butterChicken.Price = 999
	require.NoError(t, svc.SaveMenuItem(ctx, &butterChicken))

	orders := svc.GetOrders(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, 700.0, orders[0].TotalAmount)
	assert.Equal(t, 320.0, orders[0].Items[0].Price)
}

func TestCreateOrderPhoneValidation(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	cases := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // leading digit below 6
		{"0876543210", false},
		{"987654321", false},   // too short
		{"98765432101", false}, // too long
		{"98765abcde", false},
		{"", false},
	}

	for _, tc := range cases {
		customer := validCustomer()
		customer.Phone = tc.phone
		order := models.Order{
			Customer: customer,
			Items:    cartFor(svc, map[string]int{"1": 1}),
		}
		_, err := svc.CreateOrder(ctx, &order)
		if tc.valid {
			assert.NoError(t, err, "phone %q should be accepted", tc.phone)
		} else {
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation, "phone %q should be rejected", tc.phone)
		}
	}

	// Only the two valid submissions became orders.
	assert.Len(t, svc.GetOrders(ctx), 2)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc := newLocalService()

	order := models.Order{Customer: validCustomer()}
	_, err := svc.CreateOrder(context.Background(), &order)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "items")
	assert.Empty(t, svc.GetOrders(context.Background()))
}

func TestOrderStatusProgression(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	order := models.Order{
		Customer: validCustomer(),
		Items:    cartFor(svc, map[string]int{"2": 1}),
	}
	id, err := svc.CreateOrder(ctx, &order)
	require.NoError(t, err)

	for _, status := range []string{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	} {
		require.NoError(t, svc.UpdateOrderStatus(ctx, id, status))
		orders := svc.GetOrders(ctx)
		require.Len(t, orders, 1)
		assert.Equal(t, status, orders[0].Status, "each transition must persist individually")
	}

	// Delivered is terminal: cancelling a delivered order is rejected.
	err = svc.UpdateOrderStatus(ctx, id, models.StatusCancelled)
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.StatusDelivered, transition.From)
}

func TestOrderStatusRejectsUnknownAndMissing(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, "nope", "shipped"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, "nope", models.StatusConfirmed), ErrOrderNotFound)
}

func TestCancelFromPendingAndConfirmed(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	first := models.Order{Customer: validCustomer(), Items: cartFor(svc, map[string]int{"1": 1})}
	firstID, err := svc.CreateOrder(ctx, &first)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateOrderStatus(ctx, firstID, models.StatusCancelled))

	second := models.Order{Customer: validCustomer(), Items: cartFor(svc, map[string]int{"1": 1})}
	secondID, err := svc.CreateOrder(ctx, &second)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateOrderStatus(ctx, secondID, models.StatusConfirmed))
	require.NoError(t, svc.UpdateOrderStatus(ctx, secondID, models.StatusCancelled))
}

func TestSalesDataSkipsCancelledOrders(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	kept := models.Order{Customer: validCustomer(), Items: cartFor(svc, map[string]int{"1": 1})}
	_, err := svc.CreateOrder(ctx, &kept)
	require.NoError(t, err)

	cancelled := models.Order{Customer: validCustomer(), Items: cartFor(svc, map[string]int{"3": 2})}
	cancelledID, err := svc.CreateOrder(ctx, &cancelled)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateOrderStatus(ctx, cancelledID, models.StatusCancelled))

	sales := svc.GetSalesData(ctx)
	require.Len(t, sales, 1)
	assert.Equal(t, 320.0, sales[0].Amount)
	assert.Equal(t, 1, sales[0].Orders)
}

func TestCreateOrderRemoteAdoptsServerID(t *testing.T) {
	remote := newMockRemote()
	svc := newRemoteService(remote)
	ctx := context.Background()
	require.NoError(t, svc.SeedInitialMenu(ctx))

	order := models.Order{Customer: validCustomer(), Items: cartFor(svc, map[string]int{"1": 1})}
	id, err := svc.CreateOrder(ctx, &order)
	require.NoError(t, err)
	assert.Contains(t, remote.orders, id)
}

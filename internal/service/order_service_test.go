package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

func newOrderFixture(t *testing.T) (*OrderService, *model.Product, *model.Product) {
	t.Helper()
	products := NewProductService()
	a, err := products.Create(CreateProductInput{Name: "Phone Case", Price: 1000, Stock: 10})
	require.NoError(t, err)
	b, err := products.Create(CreateProductInput{Name: "Charger", Price: 2500, Stock: 10})
	require.NoError(t, err)
	return NewOrderService(newStubClients("c1"), products), a, b
}

func TestAddToCartReplacesQuantity(t *testing.T) {
	svc, a, b := newOrderFixture(t)

	require.NoError(t, svc.AddToCart(a.ID, 1))
	require.NoError(t, svc.AddToCart(b.ID, 2))
	require.NoError(t, svc.AddToCart(a.ID, 3))

	cart := svc.Cart()
	require.Len(t, cart, 2)
	// Re-adding moved the entry to the end with the new quantity.
	assert.Equal(t, b.ID, cart[0].ProductID)
	assert.Equal(t, a.ID, cart[1].ProductID)
	assert.Equal(t, 3, cart[1].Quantity)
}

func TestAddToCartValidation(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	assert.ErrorIs(t, svc.AddToCart(a.ID, 0), errs.ErrValidation)
	assert.ErrorIs(t, svc.AddToCart("ghost", 1), errs.ErrReference)
}

func TestRemoveFromCart(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 1))
	require.NoError(t, svc.RemoveFromCart(a.ID))
	assert.Empty(t, svc.Cart())
	assert.ErrorIs(t, svc.RemoveFromCart(a.ID), errs.ErrNotFound)
}

func TestCreateOrderSnapshotsAndClearsCart(t *testing.T) {
	svc, a, b := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 2))
	require.NoError(t, svc.AddToCart(b.ID, 1))

	// 2 x 1000 + 1 x 2500 = 4500, plus 20% tax = 5400.
	order, err := svc.CreateOrder("c1", 5400)
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.Cents(5400), order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, model.CartItem{ProductID: a.ID, Quantity: 2}, order.Items[0])
	assert.Equal(t, model.CartItem{ProductID: b.ID, Quantity: 1}, order.Items[1])
	assert.Empty(t, svc.Cart(), "cart is cleared by checkout")

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, got.Items)
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 2))

	_, err := svc.CreateOrder("c1", 9999)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Len(t, svc.Cart(), 1, "rejected checkout leaves the cart intact")
}

func TestCreateOrderRejectsUnknownClient(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 1))
	_, err := svc.CreateOrder("ghost", 1200)
	assert.ErrorIs(t, err, errs.ErrReference)
}

func TestOrderStatusUpdates(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 1))
	order, err := svc.CreateOrder("c1", 1200)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, model.OrderStatusReadyForPickup)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusReadyForPickup, updated.Status)

	_, err = svc.UpdateStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.UpdateStatus("missing", model.OrderStatusCompleted)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestOrderListFilterAndRemove(t *testing.T) {
	svc, a, _ := newOrderFixture(t)
	require.NoError(t, svc.AddToCart(a.ID, 1))
	first, err := svc.CreateOrder("c1", 1200)
	require.NoError(t, err)
	require.NoError(t, svc.AddToCart(a.ID, 1))
	second, err := svc.CreateOrder("c1", 1200)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(second.ID, model.OrderStatusCompleted)
	require.NoError(t, err)

	assert.Len(t, svc.List(""), 2)
	pending := svc.List(model.OrderStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	require.NoError(t, svc.Remove(first.ID))
	assert.Len(t, svc.List(""), 1)
	assert.ErrorIs(t, svc.Remove(first.ID), errs.ErrNotFound)
}

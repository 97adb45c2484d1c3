package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delsur-bakery/delsur-store/models"
)

type fakeCarts struct {
	items []models.CartItem
	err   error
}

func (f *fakeCarts) Items(context.Context, int) ([]models.CartItem, error) {
	return f.items, f.err
}

type fakeUsers struct {
	user *models.User
	err  error
}

func (f *fakeUsers) GetByID(context.Context, int) (*models.User, error) {
	return f.user, f.err
}

type fakeOrders struct {
	order   *models.Order
	err     error
	created []models.CartItem
}

func (f *fakeOrders) Create(_ context.Context, _ int, _ string, items []models.CartItem) (*models.Order, error) {
	f.created = items
	return f.order, f.err
}

func line(price string, quantity int) models.CartItem {
	return models.CartItem{ProductPrice: decimal.RequireFromString(price), Quantity: quantity}
}

func TestPlaceOrderPricesAndSubmits(t *testing.T) {
	orders := &fakeOrders{order: &models.Order{ID: 9, Status: models.OrderStatusPending}}
	service := NewService(
		&fakeCarts{items: []models.CartItem{line("1000", 2)}},
		&fakeUsers{user: &models.User{ID: 7, PromoCode: true}},
		orders,
	)

	order, summary, err := service.PlaceOrder(context.Background(), 7, "2026-09-05")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 9, order.ID)

	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("2000")))
	assert.True(t, summary.Discount.Equal(decimal.RequireFromString("1000")))
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("1000")))
	assert.Len(t, orders.created, 1, "the priced snapshot is what gets submitted")
}

func TestPlaceOrderGuestGetsNoDiscount(t *testing.T) {
	service := NewService(
		&fakeCarts{items: []models.CartItem{line("1000", 1)}},
		&fakeUsers{user: nil},
		&fakeOrders{order: &models.Order{ID: 9}},
	)

	_, summary, err := service.PlaceOrder(context.Background(), 7, "2026-09-05")
	require.NoError(t, err)
	assert.True(t, summary.Discount.IsZero())
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	service := NewService(&fakeCarts{}, &fakeUsers{}, &fakeOrders{})

	order, _, err := service.PlaceOrder(context.Background(), 7, "2026-09-05")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
}

func TestPlaceOrderRejectsBlankDeliveryDate(t *testing.T) {
	service := NewService(
		&fakeCarts{items: []models.CartItem{line("1000", 1)}},
		&fakeUsers{},
		&fakeOrders{},
	)

	_, _, err := service.PlaceOrder(context.Background(), 7, "   ")
	assert.ErrorIs(t, err, ErrMissingDeliveryDate)
}

func TestPlaceOrderSubmissionFailurePropagates(t *testing.T) {
	boom := errors.New("backend down")
	service := NewService(
		&fakeCarts{items: []models.CartItem{line("1000", 1)}},
		&fakeUsers{},
		&fakeOrders{err: boom},
	)

	order, _, err := service.PlaceOrder(context.Background(), 7, "2026-09-05")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, order)
}

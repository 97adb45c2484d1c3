package repositories

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
)

func orderBackend(t *testing.T) *remote.Client {
	return newBackend(t, func(router *gin.Engine) {
		router.POST("/orders", func(c *gin.Context) {
			var payload remote.CreateOrderPayload
			require.NoError(t, c.ShouldBindJSON(&payload))
			lines := make([]gin.H, 0, len(payload.Lines))
			for i, line := range payload.Lines {
				lines = append(lines, gin.H{
					"id": i + 1, "order_id": 9, "product_id": line.ProductID,
					"product_name": line.ProductName, "product_price": line.ProductPrice,
					"quantity": line.Quantity, "message": line.Message,
				})
			}
			c.JSON(http.StatusCreated, gin.H{
				"id": 9, "user_id": payload.UserID, "placed_at": 1756500000000,
				"preferred_delivery": payload.PreferredDelivery,
				"status":             "PENDING", "total": "21980", "lines": lines,
			})
		})
	})
}

func cartLines() []models.CartItem {
	return []models.CartItem{
		{ID: 1, UserID: 7, ProductID: 12, ProductName: "Torta", ProductPrice: decimal.RequireFromString("10990"), Quantity: 2},
	}
}

func TestCreateCachesOrderAndClearsCart(t *testing.T) {
	s := newTestStore(t)
	repo := NewOrderRepository(s, orderBackend(t))
	ctx := context.Background()

	require.NoError(t, s.UpsertCartItems(ctx, cartLines()))

	order, err := repo.Create(ctx, 7, "2026-09-05", cartLines())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 9, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	cached, lines, err := repo.Detail(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	items, err := s.CartItems(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, items, "checkout must clear the cart")
}

func TestCreateHasNoLocalFallback(t *testing.T) {
	s := newTestStore(t)
	repo := NewOrderRepository(s, downClient(t))
	ctx := context.Background()

	require.NoError(t, s.UpsertCartItems(ctx, cartLines()))

	order, err := repo.Create(ctx, 7, "2026-09-05", cartLines())
	require.Error(t, err)
	assert.Nil(t, order)

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders, "no local order without a server-assigned id")

	items, err := s.CartItems(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed checkout must keep the cart")
}

func TestSyncAllPrunesStaleOrdersWithLines(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.GET("/orders", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{
					"id": 2, "user_id": 7, "placed_at": 1756500000000,
					"preferred_delivery": "2026-09-05", "status": "DELIVERED", "total": "5000",
					"lines": []gin.H{
						{"id": 21, "order_id": 2, "product_id": 12, "quantity": 1, "product_price": "5000"},
					},
				},
			})
		})
	})
	repo := NewOrderRepository(s, client)
	ctx := context.Background()

	require.NoError(t, s.UpsertOrder(ctx, &models.Order{ID: 1, UserID: 7, Status: models.OrderStatusPending, Total: decimal.Zero}))
	require.NoError(t, s.UpsertOrderLines(ctx, []models.OrderLine{{ID: 11, OrderID: 1, ProductID: 12, Quantity: 1}}))
	require.NoError(t, s.UpsertOrder(ctx, &models.Order{ID: 2, UserID: 7, Status: models.OrderStatusPending, Total: decimal.Zero}))

	require.NoError(t, repo.SyncAll(ctx))

	gone, _, err := repo.Detail(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, gone, "order absent from the pull must be pruned")

	lines, err := s.OrderLines(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines, "pruned order must lose its lines")

	kept, keptLines, err := repo.Detail(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, models.OrderStatusDelivered, kept.Status)
	require.Len(t, keptLines, 1)
	assert.Equal(t, 21, keptLines[0].ID)
}

func TestSyncByUserOnlyPrunesThatUsersOrders(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.GET("/orders/user/7", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{})
		})
	})
	repo := NewOrderRepository(s, client)
	ctx := context.Background()

	require.NoError(t, s.UpsertOrder(ctx, &models.Order{ID: 1, UserID: 7, Status: models.OrderStatusPending, Total: decimal.Zero}))
	require.NoError(t, s.UpsertOrder(ctx, &models.Order{ID: 2, UserID: 8, Status: models.OrderStatusPending, Total: decimal.Zero}))

	require.NoError(t, repo.SyncByUser(ctx, 7))

	mine, err := s.OrdersByUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := s.OrdersByUser(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, theirs, 1, "another user's orders are out of scope")
}

func TestUpdateStatusCachesReturnedRecord(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.PATCH("/orders/9/status", func(c *gin.Context) {
			var payload remote.UpdateOrderStatusPayload
			require.NoError(t, c.ShouldBindJSON(&payload))
			c.JSON(http.StatusOK, gin.H{
				"id": 9, "user_id": 7, "placed_at": 1756500000000,
				"preferred_delivery": "2026-09-05", "status": payload.Status, "total": "21980",
				"lines": []gin.H{
					{"id": 1, "order_id": 9, "product_id": 12, "quantity": 2, "product_price": "10990"},
				},
			})
		})
	})
	repo := NewOrderRepository(s, client)
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, 9, models.OrderStatusOutForDelivery))

	order, lines, err := repo.Detail(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusOutForDelivery, order.Status)
	assert.Len(t, lines, 1)
}

func TestUpdateStatusRemoteFailurePropagates(t *testing.T) {
	s := newTestStore(t)
	repo := NewOrderRepository(s, statusClient(t, http.StatusInternalServerError, ""))
	ctx := context.Background()

	require.NoError(t, s.UpsertOrder(ctx, &models.Order{ID: 9, UserID: 7, Status: models.OrderStatusPending, Total: decimal.Zero}))

	err := repo.UpdateStatus(ctx, 9, models.OrderStatusCanceled)
	require.Error(t, err)

	order, err := s.OrderByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status, "status writes have no local fallback")
}

func TestObserveByUserEmitsPulledOrders(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.GET("/orders/user/7", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{
					"id": 9, "user_id": 7, "placed_at": 1756500000000,
					"preferred_delivery": "2026-09-05", "status": "PENDING", "total": "21980",
					"lines": []gin.H{},
				},
			})
		})
	})
	repo := NewOrderRepository(s, client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch := repo.ObserveByUser(ctx, 7)
	for {
		select {
		case orders, open := <-ch:
			require.True(t, open)
			if len(orders) == 1 {
				assert.Equal(t, 9, orders[0].ID)
				return
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for the pulled order")
		}
	}
}

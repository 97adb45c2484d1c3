package repositories

import (
	"context"
	"log"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/store"
)

// OrderRepository syncs orders and their line items. Headers and lines
// always move together inside a single local transaction, so a crash
// mid-write can never expose an order without its lines.
type OrderRepository struct {
	store  *store.Store
	client *remote.Client
}

// NewOrderRepository wires an order sync engine.
func NewOrderRepository(s *store.Store, client *remote.Client) *OrderRepository {
	return &OrderRepository{store: s, client: client}
}

// Create submits a new order built from the current cart snapshot.
// There is no local fallback: an order without a server-assigned id
// has no meaning, so remote failures propagate. On success the
// returned record is cached and the user's cart cleared atomically.
func (r *OrderRepository) Create(ctx context.Context, userID int, preferredDelivery string, items []models.CartItem) (*models.Order, error) {
	payload := remote.CreateOrderPayload{
		UserID:            userID,
		PreferredDelivery: preferredDelivery,
		Lines:             make([]remote.OrderLineRequest, 0, len(items)),
	}
	for _, item := range items {
		payload.Lines = append(payload.Lines, remote.OrderLineToRequest(item))
	}

	dto, err := r.client.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	order, lines := remote.OrderFromDTO(dto)
	err = r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeleteOrderLines(ctx, order.ID); err != nil {
			return err
		}
		if err := tx.UpsertOrder(ctx, &order); err != nil {
			return err
		}
		if err := tx.UpsertOrderLines(ctx, lines); err != nil {
			return err
		}
		return tx.ClearCart(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Observe emits every cached order (admin view) and re-emits on writes.
func (r *OrderRepository) Observe(ctx context.Context) <-chan []models.Order {
	pull := func(ctx context.Context) {
		if err := r.SyncAll(ctx); err != nil {
			log.Printf("order pull failed, keeping cached rows: %v", err)
		}
	}
	query := func(ctx context.Context) ([]models.Order, error) {
		return r.store.Orders(ctx)
	}
	return observe(ctx, r.store, store.TableOrders, pull, query)
}

// ObserveByUser emits one user's cached orders and re-emits on writes.
func (r *OrderRepository) ObserveByUser(ctx context.Context, userID int) <-chan []models.Order {
	pull := func(ctx context.Context) {
		if err := r.SyncByUser(ctx, userID); err != nil {
			log.Printf("order pull for user %d failed, keeping cached rows: %v", userID, err)
		}
	}
	query := func(ctx context.Context) ([]models.Order, error) {
		return r.store.OrdersByUser(ctx, userID)
	}
	return observe(ctx, r.store, store.TableOrders, pull, query)
}

// SyncAll pulls every remote order, prunes cached orders that the
// remote no longer has (along with their lines) and replaces each
// order's lines wholesale.
func (r *OrderRepository) SyncAll(ctx context.Context) error {
	dtos, err := r.client.Orders(ctx)
	if err != nil {
		return err
	}
	localIDs, err := r.store.OrderIDs(ctx)
	if err != nil {
		return err
	}
	return r.applyPull(ctx, dtos, localIDs)
}

// SyncByUser pulls one user's remote orders and reconciles the cached
// rows in that scope.
func (r *OrderRepository) SyncByUser(ctx context.Context, userID int) error {
	dtos, err := r.client.OrdersByUser(ctx, userID)
	if err != nil {
		return err
	}
	localIDs, err := r.store.OrderIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	return r.applyPull(ctx, dtos, localIDs)
}

// UpdateStatus sets an order's status remotely and caches the returned
// record through the same transaction used by checkout.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	dto, err := r.client.UpdateOrderStatus(ctx, orderID, string(status))
	if err != nil {
		return err
	}
	return r.cacheOrder(ctx, dto)
}

// Detail returns a cached order header and its lines. A missing order
// reads as nil.
func (r *OrderRepository) Detail(ctx context.Context, orderID int) (*models.Order, []models.OrderLine, error) {
	order, err := r.store.OrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, nil
	}
	lines, err := r.store.OrderLines(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, lines, nil
}

// applyPull reconciles a remote order set against the cached ids from
// the same scope: prune stale orders and their lines, then replace
// every pulled order's lines before writing the new header and lines.
func (r *OrderRepository) applyPull(ctx context.Context, dtos []remote.OrderDTO, localIDs []int) error {
	remoteIDs := make(map[int]struct{}, len(dtos))
	for _, dto := range dtos {
		remoteIDs[dto.ID] = struct{}{}
	}
	stale := staleIDs(localIDs, remoteIDs)

	return r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeleteOrders(ctx, stale); err != nil {
			return err
		}
		if err := tx.DeleteOrderLinesByOrders(ctx, stale); err != nil {
			return err
		}
		for _, dto := range dtos {
			order, lines := remote.OrderFromDTO(dto)
			if err := tx.DeleteOrderLines(ctx, order.ID); err != nil {
				return err
			}
			if err := tx.UpsertOrder(ctx, &order); err != nil {
				return err
			}
			if err := tx.UpsertOrderLines(ctx, lines); err != nil {
				return err
			}
		}
		return nil
	})
}

// cacheOrder writes a single returned order (header + lines) into the
// cache atomically, replacing any lines cached for it before.
func (r *OrderRepository) cacheOrder(ctx context.Context, dto remote.OrderDTO) error {
	order, lines := remote.OrderFromDTO(dto)
	return r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeleteOrderLines(ctx, order.ID); err != nil {
			return err
		}
		if err := tx.UpsertOrder(ctx, &order); err != nil {
			return err
		}
		return tx.UpsertOrderLines(ctx, lines)
	})
}

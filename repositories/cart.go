package repositories

import (
	"context"
	"log"
	"strings"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/store"
)

// CartRepository syncs one user's cart. Line identity is the
// (user, product, normalized message) key: identical keys merge by
// summing quantities, different messages stay distinct lines.
type CartRepository struct {
	store  *store.Store
	client *remote.Client
}

// NewCartRepository wires a cart sync engine.
func NewCartRepository(s *store.Store, client *remote.Client) *CartRepository {
	return &CartRepository{store: s, client: client}
}

// Observe emits the user's cached cart and re-emits on every write.
func (r *CartRepository) Observe(ctx context.Context, userID int) <-chan []models.CartItem {
	pull := func(ctx context.Context) {
		if err := r.sync(ctx, userID); err != nil {
			log.Printf("cart pull for user %d failed, keeping cached rows: %v", userID, err)
		}
	}
	query := func(ctx context.Context) ([]models.CartItem, error) {
		return r.store.CartItems(ctx, userID)
	}
	return observe(ctx, r.store, store.TableCartItems, pull, query)
}

// Items returns the current local cart snapshot.
func (r *CartRepository) Items(ctx context.Context, userID int) ([]models.CartItem, error) {
	return r.store.CartItems(ctx, userID)
}

// AddItem adds a product to the cart, remote-first. The fallback merges
// into an existing line with the same (product, message) key, refreshing
// the denormalized product snapshot, or inserts a new local row.
func (r *CartRepository) AddItem(ctx context.Context, userID int, product models.Product, quantity int, message string) error {
	msg := normalizeMessage(message)
	payload := remote.CartItemPayload{
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		ProductImage: product.Image,
		Quantity:     quantity,
		Message:      wireMessage(msg),
	}

	dto, err := r.client.AddCartItem(ctx, userID, payload)
	if err == nil {
		item := remote.CartItemFromDTO(dto)
		return r.store.UpsertCartItem(ctx, &item)
	}
	if !fallbackEligible(err) {
		return err
	}
	return r.addLocally(ctx, userID, product, quantity, msg)
}

// UpdateQuantity changes a line's quantity. A quantity of zero or less
// means removal, never a stored non-positive row.
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID int, item models.CartItem, quantity int) error {
	if item.UserID != userID {
		return nil
	}
	if quantity <= 0 {
		return r.RemoveItem(ctx, userID, item)
	}

	dto, err := r.client.UpdateCartQuantity(ctx, userID, item.ID, quantity)
	if err == nil {
		updated := remote.CartItemFromDTO(dto)
		return r.store.UpsertCartItem(ctx, &updated)
	}
	if !fallbackEligible(err) {
		return err
	}
	item.Quantity = quantity
	return r.store.UpsertCartItem(ctx, &item)
}

// UpdateMessage changes a line's personalization message. On fallback
// it defends against the edit colliding with another line's key: the
// quantities merge into the pre-existing row and the edited row goes
// away, so no duplicate keys survive.
func (r *CartRepository) UpdateMessage(ctx context.Context, userID, itemID int, message string) error {
	msg := normalizeMessage(message)

	item, err := r.store.CartItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return nil
	}
	if item.Message == msg {
		return nil
	}

	dto, rerr := r.client.UpdateCartMessage(ctx, userID, itemID, wireMessage(msg))
	if rerr == nil {
		updated := remote.CartItemFromDTO(dto)
		return r.store.UpsertCartItem(ctx, &updated)
	}
	if !fallbackEligible(rerr) {
		return rerr
	}
	return r.updateMessageLocally(ctx, userID, item, msg)
}

// RemoveItem deletes one cart line. The cached row goes away whether
// the remote call succeeded or degraded.
func (r *CartRepository) RemoveItem(ctx context.Context, userID int, item models.CartItem) error {
	if item.UserID != userID {
		return nil
	}
	err := r.client.RemoveCartItem(ctx, userID, item.ID)
	if err != nil && !fallbackEligible(err) {
		return err
	}
	return r.store.DeleteCartItem(ctx, item.ID)
}

// Clear empties the user's cart, remote-first.
func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	err := r.client.ClearCart(ctx, userID)
	if err != nil && !fallbackEligible(err) {
		return err
	}
	return r.store.ClearCart(ctx, userID)
}

// sync pulls the remote cart, prunes cached lines whose ids are gone
// from the remote result (server-side deletions) and upserts the rest,
// all in one transaction.
func (r *CartRepository) sync(ctx context.Context, userID int) error {
	dtos, err := r.client.Cart(ctx, userID)
	if err != nil {
		return err
	}

	remoteIDs := make(map[int]struct{}, len(dtos))
	items := make([]models.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		remoteIDs[dto.ID] = struct{}{}
		items = append(items, remote.CartItemFromDTO(dto))
	}

	localIDs, err := r.store.CartItemIDs(ctx, userID)
	if err != nil {
		return err
	}

	return r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.DeleteCartItems(ctx, staleIDs(localIDs, remoteIDs)); err != nil {
			return err
		}
		return tx.UpsertCartItems(ctx, items)
	})
}

func (r *CartRepository) addLocally(ctx context.Context, userID int, product models.Product, quantity int, msg string) error {
	existing, err := r.store.CartItemByKey(ctx, userID, product.ID, msg)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Quantity += quantity
		existing.ProductName = product.Name
		existing.ProductPrice = product.Price
		existing.ProductImage = product.Image
		return r.store.UpsertCartItem(ctx, existing)
	}
	item := models.CartItem{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		ProductImage: product.Image,
		Quantity:     quantity,
		Message:      msg,
	}
	return r.store.UpsertCartItem(ctx, &item)
}

func (r *CartRepository) updateMessageLocally(ctx context.Context, userID int, item *models.CartItem, msg string) error {
	duplicate, err := r.store.CartItemByKey(ctx, userID, item.ProductID, msg)
	if err != nil {
		return err
	}
	if duplicate != nil && duplicate.ID != item.ID {
		duplicate.Quantity += item.Quantity
		itemID := item.ID
		return r.store.Transaction(ctx, func(tx *store.Store) error {
			if err := tx.UpsertCartItem(ctx, duplicate); err != nil {
				return err
			}
			return tx.DeleteCartItem(ctx, itemID)
		})
	}
	item.Message = msg
	return r.store.UpsertCartItem(ctx, item)
}

// normalizeMessage trims whitespace; a blank message collapses to the
// canonical empty value.
func normalizeMessage(message string) string {
	return strings.TrimSpace(message)
}

// wireMessage maps the canonical empty message to nil on the wire.
func wireMessage(msg string) *string {
	if msg == "" {
		return nil
	}
	return &msg
}

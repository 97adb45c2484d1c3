// Package checkout turns a cart into a placed order: it prices the
// snapshot, submits the order and reports the totals the buyer saw.
package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/pricing"
)

var (
	// ErrEmptyCart rejects checkout on a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingDeliveryDate rejects checkout without a preferred
	// delivery date.
	ErrMissingDeliveryDate = errors.New("preferred delivery date is required")
)

// CartReader supplies the cart snapshot to price and submit.
type CartReader interface {
	Items(ctx context.Context, userID int) ([]models.CartItem, error)
}

// UserReader resolves the buyer for discount eligibility. A nil user
// means guest pricing.
type UserReader interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// OrderCreator submits the order remotely and caches the result.
type OrderCreator interface {
	Create(ctx context.Context, userID int, preferredDelivery string, items []models.CartItem) (*models.Order, error)
}

// Service orchestrates checkout across the cart, user and order
// engines.
type Service struct {
	carts  CartReader
	users  UserReader
	orders OrderCreator
}

// NewService wires a checkout service.
func NewService(carts CartReader, users UserReader, orders OrderCreator) *Service {
	return &Service{carts: carts, users: users, orders: orders}
}

// PlaceOrder prices the user's current cart and submits it as an
// order with the given preferred delivery date. It returns the placed
// order together with the pricing summary shown to the buyer. Order
// submission has no local fallback, so remote failures surface as-is
// and the cart stays intact.
func (s *Service) PlaceOrder(ctx context.Context, userID int, deliveryDate string) (*models.Order, pricing.Summary, error) {
	deliveryDate = strings.TrimSpace(deliveryDate)
	if deliveryDate == "" {
		return nil, pricing.Summary{}, ErrMissingDeliveryDate
	}

	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, pricing.Summary{}, err
	}
	if len(items) == 0 {
		return nil, pricing.Summary{}, ErrEmptyCart
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, pricing.Summary{}, err
	}
	summary := pricing.Calculate(items, user)

	order, err := s.orders.Create(ctx, userID, deliveryDate, items)
	if err != nil {
		return nil, pricing.Summary{}, err
	}
	return order, summary, nil
}

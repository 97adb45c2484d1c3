package remote

import (
	"context"
	"fmt"
	"net/http"
)

// Cart fetches a user's current cart.
func (c *Client) Cart(ctx context.Context, userID int) ([]CartItemDTO, error) {
	var items []CartItemDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d/cart", userID), nil, &items)
	return items, err
}

// AddCartItem adds a product to a user's cart and returns the stored
// line. The backend merges identical (product, message) lines itself.
func (c *Client) AddCartItem(ctx context.Context, userID int, payload CartItemPayload) (CartItemDTO, error) {
	var item CartItemDTO
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/users/%d/cart", userID), payload, &item)
	return item, err
}

// UpdateCartQuantity changes a cart line's quantity.
func (c *Client) UpdateCartQuantity(ctx context.Context, userID, itemID, quantity int) (CartItemDTO, error) {
	var item CartItemDTO
	path := fmt.Sprintf("/users/%d/cart/%d/quantity", userID, itemID)
	err := c.doJSON(ctx, http.MethodPatch, path, UpdateQuantityPayload{Quantity: quantity}, &item)
	return item, err
}

// UpdateCartMessage changes a cart line's personalization message.
// A nil message is the canonical "no message".
func (c *Client) UpdateCartMessage(ctx context.Context, userID, itemID int, message *string) (CartItemDTO, error) {
	var item CartItemDTO
	path := fmt.Sprintf("/users/%d/cart/%d/message", userID, itemID)
	err := c.doJSON(ctx, http.MethodPatch, path, UpdateMessagePayload{Message: message}, &item)
	return item, err
}

// RemoveCartItem deletes one cart line.
func (c *Client) RemoveCartItem(ctx context.Context, userID, itemID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/cart/%d", userID, itemID), nil, nil)
}

// ClearCart deletes every line in a user's cart.
func (c *Client) ClearCart(ctx context.Context, userID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/cart", userID), nil, nil)
}

package remote

import (
	"context"
	"fmt"
	"net/http"
)

// CreateOrder submits a new order and returns the authoritative record
// with server-assigned ids, status and totals.
func (c *Client) CreateOrder(ctx context.Context, payload CreateOrderPayload) (OrderDTO, error) {
	var order OrderDTO
	err := c.doJSON(ctx, http.MethodPost, "/orders", payload, &order)
	return order, err
}

// Orders fetches every order (admin view).
func (c *Client) Orders(ctx context.Context) ([]OrderDTO, error) {
	var orders []OrderDTO
	err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

// OrdersByUser fetches one user's orders.
func (c *Client) OrdersByUser(ctx context.Context, userID int) ([]OrderDTO, error) {
	var orders []OrderDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), nil, &orders)
	return orders, err
}

// UpdateOrderStatus sets an order's status and returns the updated
// record, lines included.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (OrderDTO, error) {
	var order OrderDTO
	path := fmt.Sprintf("/orders/%d/status", orderID)
	err := c.doJSON(ctx, http.MethodPatch, path, UpdateOrderStatusPayload{Status: status}, &order)
	return order, err
}

package remote

import (
	"context"
	"fmt"
	"net/http"
)

// Login authenticates credentials against the backend.
func (c *Client) Login(ctx context.Context, request LoginRequest) (LoginResponse, error) {
	var response LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", request, &response)
	return response, err
}

// Register creates an account and returns the stored user record.
func (c *Client) Register(ctx context.Context, payload UserPayload) (UserDTO, error) {
	var user UserDTO
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", payload, &user)
	return user, err
}

// Users fetches every user account.
func (c *Client) Users(ctx context.Context) ([]UserDTO, error) {
	var users []UserDTO
	err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

// User fetches one user by id.
func (c *Client) User(ctx context.Context, id int) (UserDTO, error) {
	var user UserDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user)
	return user, err
}

// UpdateUser replaces a user profile and returns the stored record.
func (c *Client) UpdateUser(ctx context.Context, id int, payload UserPayload) (UserDTO, error) {
	var user UserDTO
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, &user)
	return user, err
}

// SetUserRole changes a user's role.
func (c *Client) SetUserRole(ctx context.Context, id int, role string) (UserDTO, error) {
	var user UserDTO
	path := fmt.Sprintf("/users/%d/role?role=%s", id, role)
	err := c.doJSON(ctx, http.MethodPatch, path, nil, &user)
	return user, err
}

// SetUserBlocked toggles a user's blocked flag.
func (c *Client) SetUserBlocked(ctx context.Context, id int, blocked bool) (UserDTO, error) {
	var user UserDTO
	path := fmt.Sprintf("/users/%d/blocked?blocked=%t", id, blocked)
	err := c.doJSON(ctx, http.MethodPatch, path, nil, &user)
	return user, err
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

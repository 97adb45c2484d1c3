package remote

import (
	"context"
	"fmt"
	"net/http"
)

// PublicCategories fetches the categories visible to customers.
func (c *Client) PublicCategories(ctx context.Context) ([]CategoryDTO, error) {
	var categories []CategoryDTO
	err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

// AdminCategories fetches every category, blocked ones included.
func (c *Client) AdminCategories(ctx context.Context) ([]CategoryDTO, error) {
	var categories []CategoryDTO
	err := c.doJSON(ctx, http.MethodGet, "/categories/admin", nil, &categories)
	return categories, err
}

// Category fetches one category by id.
func (c *Client) Category(ctx context.Context, id int) (CategoryDTO, error) {
	var category CategoryDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &category)
	return category, err
}

// CreateCategory creates a category and returns the authoritative
// record with its server-assigned id.
func (c *Client) CreateCategory(ctx context.Context, category CategoryDTO) (CategoryDTO, error) {
	var created CategoryDTO
	err := c.doJSON(ctx, http.MethodPost, "/categories", category, &created)
	return created, err
}

// UpdateCategory replaces a category and returns the stored record.
func (c *Client) UpdateCategory(ctx context.Context, id int, category CategoryDTO) (CategoryDTO, error) {
	var updated CategoryDTO
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), category, &updated)
	return updated, err
}

// SetCategoryBlocked toggles a category's blocked flag.
func (c *Client) SetCategoryBlocked(ctx context.Context, id int, blocked bool) (CategoryDTO, error) {
	var updated CategoryDTO
	path := fmt.Sprintf("/categories/%d/blocked?blocked=%t", id, blocked)
	err := c.doJSON(ctx, http.MethodPatch, path, nil, &updated)
	return updated, err
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]ProductDTO, error) {
	var products []ProductDTO
	err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products)
	return products, err
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id int) (ProductDTO, error) {
	var product ProductDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product)
	return product, err
}

// ProductsByCategory fetches a category's products; the admin variant
// includes blocked ones.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID int, admin bool) ([]ProductDTO, error) {
	path := fmt.Sprintf("/products/category/%d", categoryID)
	if admin {
		path += "/admin"
	}
	var products []ProductDTO
	err := c.doJSON(ctx, http.MethodGet, path, nil, &products)
	return products, err
}

// CreateProduct creates a product and returns the authoritative record.
func (c *Client) CreateProduct(ctx context.Context, product ProductDTO) (ProductDTO, error) {
	var created ProductDTO
	err := c.doJSON(ctx, http.MethodPost, "/products", product, &created)
	return created, err
}

// UpdateProduct replaces a product and returns the stored record.
func (c *Client) UpdateProduct(ctx context.Context, id int, product ProductDTO) (ProductDTO, error) {
	var updated ProductDTO
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), product, &updated)
	return updated, err
}

// SetProductBlocked toggles a product's blocked flag.
func (c *Client) SetProductBlocked(ctx context.Context, id int, blocked bool) (ProductDTO, error) {
	var updated ProductDTO
	path := fmt.Sprintf("/products/%d/blocked?blocked=%t", id, blocked)
	err := c.doJSON(ctx, http.MethodPatch, path, nil, &updated)
	return updated, err
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

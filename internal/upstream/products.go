package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sheshape-storefront/internal/domain"
)

// ProductListParams filter and page the catalog listing.
type ProductListParams struct {
	Page     int
	Size     int
	Category string
	Search   string
	SortBy   string
	SortDir  string
}

func (p ProductListParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sortDir", p.SortDir)
	}
	return q
}

// Products lists active catalog products.
func (c *Client) Products(ctx context.Context, p ProductListParams) (*domain.ProductPage, error) {
	var page domain.ProductPage
	if err := c.get(ctx, "/api/products", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AllProducts lists the full catalog including inactive products; admin only.
func (c *Client) AllProducts(ctx context.Context, p ProductListParams) (*domain.ProductPage, error) {
	var page domain.ProductPage
	if err := c.get(ctx, "/api/products/all", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var products []domain.Product
	if err := c.get(ctx, "/api/products/featured", q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/api/product-categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.post(ctx, "/api/products", in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.put(ctx, fmt.Sprintf("/api/products/%d", id), in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (c *Client) ActivateProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.put(ctx, fmt.Sprintf("/api/products/%d/activate", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeactivateProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.put(ctx, fmt.Sprintf("/api/products/%d/deactivate", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

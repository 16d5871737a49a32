package upstream

import (
	"context"

	"github.com/pkg/errors"

	"sheshape-storefront/internal/domain"
)

// Cart fetches the caller's active cart. A missing cart is not an error;
// callers treat nil as empty.
func (c *Client) Cart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, "/api/cart", nil, &cart); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// CartCount returns the caller's cart line count for the header badge.
func (c *Client) CartCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/cart/count", nil, &out); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return out.Count, nil
}

// CartValidation reports per-line availability problems found upstream.
type CartValidation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// ValidateCart asks the backend to re-check stock and pricing for the
// caller's cart before checkout.
func (c *Client) ValidateCart(ctx context.Context) (*CartValidation, error) {
	var out CartValidation
	if err := c.get(ctx, "/api/cart/validate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

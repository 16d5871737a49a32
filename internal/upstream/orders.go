package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sheshape-storefront/internal/domain"
)

// Checkout submits the order-creation request built from a completed
// checkout session.
func (c *Client) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/api/orders/checkout", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) OrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, "/api/orders/number/"+url.PathEscape(number), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderListParams are the paging and sort knobs the listing endpoints accept.
type OrderListParams struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

func (p OrderListParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.Direction != "" {
		q.Set("direction", p.Direction)
	}
	return q
}

// MyOrders lists the caller's own order history.
func (c *Client) MyOrders(ctx context.Context, p OrderListParams) (*domain.OrderPage, error) {
	var page domain.OrderPage
	if err := c.get(ctx, "/api/orders/my-orders", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AllOrders lists every order; admin only upstream.
func (c *Client) AllOrders(ctx context.Context, p OrderListParams) (*domain.OrderPage, error) {
	var page domain.OrderPage
	if err := c.get(ctx, "/api/orders/all", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) OrdersByStatus(ctx context.Context, status domain.OrderStatus, p OrderListParams) (*domain.OrderPage, error) {
	var page domain.OrderPage
	if err := c.get(ctx, "/api/orders/status/"+url.PathEscape(string(status)), p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"status": string(status)}
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d/status", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"paymentStatus": string(status)}
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d/payment-status", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d/cancel", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

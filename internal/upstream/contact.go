package upstream

import (
	"context"

	"sheshape-storefront/internal/domain"
)

// SendContactMessage forwards the contact form to the backend.
func (c *Client) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return c.post(ctx, "/api/contact", msg, nil)
}

package upstream

import (
	"context"
	"fmt"

	"sheshape-storefront/internal/domain"
)

// Me fetches the authenticated user's account and profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users lists all accounts; admin only upstream.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in domain.UserInput) (*domain.User, error) {
	var user domain.User
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

// Trainers lists trainer accounts for the programs pages.
func (c *Client) Trainers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/api/trainers", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Nutritionists lists nutritionist accounts for the nutrition pages.
func (c *Client) Nutritionists(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/api/nutritionists", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

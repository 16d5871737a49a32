package upstream

import (
	"context"
	"fmt"

	"sheshape-storefront/internal/domain"
)

// NutritionPlans lists active plans.
func (c *Client) NutritionPlans(ctx context.Context) ([]domain.NutritionPlan, error) {
	var plans []domain.NutritionPlan
	if err := c.get(ctx, "/api/nutrition/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// AllNutritionPlans lists plans including inactive ones; admin only.
func (c *Client) AllNutritionPlans(ctx context.Context) ([]domain.NutritionPlan, error) {
	var plans []domain.NutritionPlan
	if err := c.get(ctx, "/api/nutrition/plans/all", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) NutritionPlan(ctx context.Context, id int64) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	if err := c.get(ctx, fmt.Sprintf("/api/nutrition/plans/%d", id), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) CreateNutritionPlan(ctx context.Context, in domain.NutritionPlanInput) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	if err := c.post(ctx, "/api/nutrition/plans", in, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) UpdateNutritionPlan(ctx context.Context, id int64, in domain.NutritionPlanInput) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	if err := c.put(ctx, fmt.Sprintf("/api/nutrition/plans/%d", id), in, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) DeleteNutritionPlan(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/nutrition/plans/%d", id))
}

func (c *Client) ActivateNutritionPlan(ctx context.Context, id int64) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	if err := c.put(ctx, fmt.Sprintf("/api/nutrition/plans/%d/activate", id), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) DeactivateNutritionPlan(ctx context.Context, id int64) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	if err := c.put(ctx, fmt.Sprintf("/api/nutrition/plans/%d/deactivate", id), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// MyNutritionPlans lists the caller's purchased plans.
func (c *Client) MyNutritionPlans(ctx context.Context) ([]domain.UserNutritionPlan, error) {
	var plans []domain.UserNutritionPlan
	if err := c.get(ctx, "/api/nutrition/my-plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// PurchaseNutritionPlan assigns a plan to the caller.
func (c *Client) PurchaseNutritionPlan(ctx context.Context, id int64) (*domain.UserNutritionPlan, error) {
	var purchase domain.UserNutritionPlan
	if err := c.post(ctx, fmt.Sprintf("/api/nutrition/plans/%d/purchase", id), nil, &purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

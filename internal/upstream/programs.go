package upstream

import (
	"context"
	"fmt"

	"sheshape-storefront/internal/domain"
)

// GymPrograms lists active programs.
func (c *Client) GymPrograms(ctx context.Context) ([]domain.GymProgram, error) {
	var programs []domain.GymProgram
	if err := c.get(ctx, "/api/gym/programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *Client) GymProgram(ctx context.Context, id int64) (*domain.GymProgram, error) {
	var program domain.GymProgram
	if err := c.get(ctx, fmt.Sprintf("/api/gym/programs/%d", id), nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// GymProgramSessions lists a program's session videos in order.
func (c *Client) GymProgramSessions(ctx context.Context, programID int64) ([]domain.GymSession, error) {
	var sessions []domain.GymSession
	if err := c.get(ctx, fmt.Sprintf("/api/gym/programs/%d/sessions", programID), nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// TrainerGymPrograms lists programs owned by one trainer.
func (c *Client) TrainerGymPrograms(ctx context.Context, trainerID int64) ([]domain.GymProgram, error) {
	var programs []domain.GymProgram
	if err := c.get(ctx, fmt.Sprintf("/api/gym/trainers/%d/programs", trainerID), nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// MyGymPrograms lists the caller's purchased programs.
func (c *Client) MyGymPrograms(ctx context.Context) ([]domain.UserGymProgram, error) {
	var programs []domain.UserGymProgram
	if err := c.get(ctx, "/api/gym/my-programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// PurchaseGymProgram assigns a program to the caller.
func (c *Client) PurchaseGymProgram(ctx context.Context, id int64) (*domain.UserGymProgram, error) {
	var purchase domain.UserGymProgram
	if err := c.post(ctx, fmt.Sprintf("/api/gym/programs/%d/purchase", id), nil, &purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// GoalService manages savings goals. Status is derived, not client-supplied:
// a goal completes as soon as its current amount reaches the target.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// GetGoals returns all goals for a user.
func (s *GoalService) GetGoals(userID string) ([]model.Goal, error) {
	return s.goalRepo.GetGoals(userID)
}

// CreateGoal persists a new goal with its status derived from the amounts.
func (s *GoalService) CreateGoal(goal model.Goal) (model.Goal, error) {
	goal.ID = uuid.New().String()
	goal.Status = deriveGoalStatus(goal)

	if err := s.goalRepo.InsertGoal(goal); err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// UpdateGoal updates an existing goal, re-deriving its status.
func (s *GoalService) UpdateGoal(goal model.Goal) (model.Goal, error) {
	if _, err := s.goalRepo.GetGoalOnID(goal.UserID, goal.ID); err != nil {
		return model.Goal{}, err
	}

	goal.Status = deriveGoalStatus(goal)
	if err := s.goalRepo.UpdateGoal(goal); err != nil {
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes a goal owned by the user.
func (s *GoalService) DeleteGoal(userID, goalID string) error {
	return s.goalRepo.DeleteGoal(userID, goalID)
}

func deriveGoalStatus(goal model.Goal) string {
	if goal.TargetAmount > 0 && goal.CurrentAmount >= goal.TargetAmount {
		return model.GoalStatusCompleted
	}
	return model.GoalStatusActive
}

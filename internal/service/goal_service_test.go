package service_test

import (
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestGoalService tests the derived goal status.
//
// WHY: Status is server-derived, not client-supplied: a goal must flip to
// completed exactly when the current amount reaches the target.
func TestGoalService(t *testing.T) {
	newService := func(t *testing.T) (*service.GoalService, model.User) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		return service.NewGoalService(repository.NewGoalRepository(db)), user
	}

	t.Run("new goal below target is active", func(t *testing.T) {
		svc, user := newService(t)

		goal, err := svc.CreateGoal(model.Goal{
			UserID:        user.ID,
			Title:         "House deposit",
			TargetAmount:  50000,
			CurrentAmount: 10000,
		})
		if err != nil {
			t.Fatalf("CreateGoal() returned unexpected error: %v", err)
		}
		if goal.Status != model.GoalStatusActive {
			t.Errorf("Expected active, got %s", goal.Status)
		}
	})

	t.Run("reaching the target completes the goal", func(t *testing.T) {
		svc, user := newService(t)

		goal, err := svc.CreateGoal(model.Goal{
			UserID:        user.ID,
			Title:         "Emergency fund",
			TargetAmount:  5000,
			CurrentAmount: 4000,
		})
		if err != nil {
			t.Fatalf("CreateGoal() returned unexpected error: %v", err)
		}

		goal.CurrentAmount = 5000
		updated, err := svc.UpdateGoal(goal)
		if err != nil {
			t.Fatalf("UpdateGoal() returned unexpected error: %v", err)
		}
		if updated.Status != model.GoalStatusCompleted {
			t.Errorf("Expected completed, got %s", updated.Status)
		}
	})

	t.Run("dropping below the target reactivates the goal", func(t *testing.T) {
		svc, user := newService(t)

		goal, err := svc.CreateGoal(model.Goal{
			UserID:        user.ID,
			Title:         "Vacation",
			TargetAmount:  2000,
			CurrentAmount: 2000,
		})
		if err != nil {
			t.Fatalf("CreateGoal() returned unexpected error: %v", err)
		}
		if goal.Status != model.GoalStatusCompleted {
			t.Fatalf("Expected completed, got %s", goal.Status)
		}

		goal.CurrentAmount = 1500
		updated, err := svc.UpdateGoal(goal)
		if err != nil {
			t.Fatalf("UpdateGoal() returned unexpected error: %v", err)
		}
		if updated.Status != model.GoalStatusActive {
			t.Errorf("Expected active after withdrawal, got %s", updated.Status)
		}
	})

	t.Run("updating an unknown goal fails", func(t *testing.T) {
		svc, user := newService(t)

		_, err := svc.UpdateGoal(model.Goal{ID: testutil.MakeID(), UserID: user.ID, Title: "x", TargetAmount: 1})
		if err == nil {
			t.Error("Expected error updating unknown goal")
		}
	})
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// GetGoals retrieves all goals belonging to a user.
func (r *GoalRepository) GetGoals(userID string) ([]model.Goal, error) {
	query := `
          SELECT id, user_id, title, category, target_amount, current_amount,
                 deadline, description, status
          FROM goal
          WHERE user_id = ?
          ORDER BY status, deadline
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		var g model.Goal
		var category, deadline, description sql.NullString

		err := rows.Scan(
			&g.ID,
			&g.UserID,
			&g.Title,
			&category,
			&g.TargetAmount,
			&g.CurrentAmount,
			&deadline,
			&description,
			&g.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal table results: %w", err)
		}

		g.Category = category.String
		g.Deadline = deadline.String
		g.Description = description.String

		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// GetGoalOnID retrieves one goal, verifying ownership.
func (r *GoalRepository) GetGoalOnID(userID, goalID string) (model.Goal, error) {
	query := `
          SELECT id, user_id, title, category, target_amount, current_amount,
                 deadline, description, status
          FROM goal
          WHERE id = ? AND user_id = ?
      `
	var g model.Goal
	var category, deadline, description sql.NullString

	err := r.db.QueryRow(query, goalID, userID).Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&category,
		&g.TargetAmount,
		&g.CurrentAmount,
		&deadline,
		&description,
		&g.Status,
	)
	if err == sql.ErrNoRows {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to query goal: %w", err)
	}

	g.Category = category.String
	g.Deadline = deadline.String
	g.Description = description.String

	return g, nil
}

// InsertGoal creates a new goal row.
func (r *GoalRepository) InsertGoal(g model.Goal) error {
	query := `
          INSERT INTO goal
              (id, user_id, title, category, target_amount, current_amount,
               deadline, description, status)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		g.ID,
		g.UserID,
		g.Title,
		nullableString(g.Category),
		g.TargetAmount,
		g.CurrentAmount,
		nullableString(g.Deadline),
		nullableString(g.Description),
		g.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// UpdateGoal overwrites all mutable fields of a goal, verifying ownership.
func (r *GoalRepository) UpdateGoal(g model.Goal) error {
	query := `
          UPDATE goal
          SET title = ?, category = ?, target_amount = ?, current_amount = ?,
              deadline = ?, description = ?, status = ?
          WHERE id = ? AND user_id = ?
      `
	result, err := r.db.Exec(
		query,
		g.Title,
		nullableString(g.Category),
		g.TargetAmount,
		g.CurrentAmount,
		nullableString(g.Deadline),
		nullableString(g.Description),
		g.Status,
		g.ID,
		g.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// DeleteGoal removes a goal, verifying ownership.
func (r *GoalRepository) DeleteGoal(userID, goalID string) error {
	result, err := r.db.Exec(`DELETE FROM goal WHERE id = ? AND user_id = ?`, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

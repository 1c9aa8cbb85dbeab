package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// AlertRepository provides data access methods for the alert table.
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new AlertRepository with the provided database connection.
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetAlerts retrieves all alerts belonging to a user, oldest first.
func (r *AlertRepository) GetAlerts(userID string) ([]model.Alert, error) {
	query := `
          SELECT id, user_id, coin_id, target_price, condition, created_at
          FROM alert
          WHERE user_id = ?
          ORDER BY created_at, id
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert table: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		var a model.Alert
		var createdAt string

		err := rows.Scan(&a.ID, &a.UserID, &a.CoinID, &a.TargetPrice, &a.Condition, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert table results: %w", err)
		}

		if a.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert table: %w", err)
	}

	return alerts, nil
}

// InsertAlert creates a new alert row.
func (r *AlertRepository) InsertAlert(a model.Alert) error {
	query := `
          INSERT INTO alert (id, user_id, coin_id, target_price, condition, created_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		a.ID,
		a.UserID,
		a.CoinID,
		a.TargetPrice,
		a.Condition,
		a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// DeleteAlert removes an alert, verifying ownership.
func (r *AlertRepository) DeleteAlert(userID, alertID string) error {
	result, err := r.db.Exec(`DELETE FROM alert WHERE id = ? AND user_id = ?`, alertID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAlertNotFound
	}
	return nil
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// DividendRepository provides data access methods for the dividend table.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetDividends retrieves all dividends belonging to a user, ordered by payment date.
func (r *DividendRepository) GetDividends(userID string) ([]model.Dividend, error) {
	query := `
          SELECT id, user_id, asset_name, amount, payment_date, status
          FROM dividend
          WHERE user_id = ?
          ORDER BY payment_date, id
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend table: %w", err)
	}
	defer rows.Close()

	dividends := []model.Dividend{}
	for rows.Next() {
		var d model.Dividend
		var paymentDate string

		err := rows.Scan(&d.ID, &d.UserID, &d.AssetName, &d.Amount, &paymentDate, &d.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend table results: %w", err)
		}

		if d.PaymentDate, err = ParseTime(paymentDate); err != nil {
			return nil, err
		}

		dividends = append(dividends, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend table: %w", err)
	}

	return dividends, nil
}

// InsertDividend creates a new dividend row.
func (r *DividendRepository) InsertDividend(d model.Dividend) error {
	query := `
          INSERT INTO dividend (id, user_id, asset_name, amount, payment_date, status)
          VALUES (?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		d.ID,
		d.UserID,
		d.AssetName,
		d.Amount,
		d.PaymentDate.UTC().Format("2006-01-02 15:04:05"),
		d.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}
	return nil
}

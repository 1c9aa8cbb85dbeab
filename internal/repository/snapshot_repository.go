package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot
// table. The table carries a UNIQUE(user_id, date) constraint; concurrent
// same-day writers are expected to catch ErrDuplicateEntry from
// InsertSnapshot and fall back to UpdateSnapshotValue.
type SnapshotRepository struct {
	db dbtx
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// WithTx returns a copy of the repository bound to an open transaction, so
// multi-row writes (the 30-day backfill) commit or roll back as one unit.
func (r *SnapshotRepository) WithTx(tx *sql.Tx) *SnapshotRepository {
	return &SnapshotRepository{db: tx}
}

// CountSnapshots returns the number of snapshot rows a user has.
func (r *SnapshotRepository) CountSnapshots(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM portfolio_snapshot WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count portfolio_snapshot rows: %w", err)
	}
	return count, nil
}

// FindByDate retrieves the snapshot for a user and calendar day.
func (r *SnapshotRepository) FindByDate(userID, date string) (model.PortfolioSnapshot, error) {
	query := `
          SELECT id, user_id, date, total_value
          FROM portfolio_snapshot
          WHERE user_id = ? AND date = ?
      `
	var s model.PortfolioSnapshot
	var dateStr string

	err := r.db.QueryRow(query, userID, date).Scan(&s.ID, &s.UserID, &dateStr, &s.TotalValue)
	if err == sql.ErrNoRows {
		return model.PortfolioSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.PortfolioSnapshot{}, fmt.Errorf("failed to query portfolio_snapshot: %w", err)
	}

	if s.Date, err = ParseTime(dateStr); err != nil {
		return model.PortfolioSnapshot{}, err
	}

	return s, nil
}

// InsertSnapshot creates one snapshot row. A (user, date) collision surfaces
// as apperrors.ErrDuplicateEntry so callers can resolve the benign race.
func (r *SnapshotRepository) InsertSnapshot(s model.PortfolioSnapshot) error {
	query := `
          INSERT INTO portfolio_snapshot (id, user_id, date, total_value)
          VALUES (?, ?, ?, ?)
      `
	_, err := r.db.Exec(query, s.ID, s.UserID, s.Date.UTC().Format("2006-01-02"), s.TotalValue)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert portfolio_snapshot: %w", err)
	}
	return nil
}

// UpdateSnapshotValue overwrites the total value of an existing day's row.
func (r *SnapshotRepository) UpdateSnapshotValue(userID, date string, totalValue float64) error {
	query := `
          UPDATE portfolio_snapshot
          SET total_value = ?
          WHERE user_id = ? AND date = ?
      `
	result, err := r.db.Exec(query, totalValue, userID, date)
	if err != nil {
		return fmt.Errorf("failed to update portfolio_snapshot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSnapshotNotFound
	}
	return nil
}

// ListRecent retrieves the most recent limit snapshots for a user,
// returned in ascending date order for direct charting.
func (r *SnapshotRepository) ListRecent(userID string, limit int) ([]model.PortfolioSnapshot, error) {
	query := `
          SELECT id, user_id, date, total_value
          FROM portfolio_snapshot
          WHERE user_id = ?
          ORDER BY date DESC
          LIMIT ?
      `
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}
	for rows.Next() {
		var s model.PortfolioSnapshot
		var dateStr string

		if err := rows.Scan(&s.ID, &s.UserID, &dateStr, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshot table results: %w", err)
		}
		if s.Date, err = ParseTime(dateStr); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshot table: %w", err)
	}

	// Query is newest-first to apply the limit; callers want oldest-first.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}

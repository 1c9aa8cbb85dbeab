package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// The log is append-only; this repository exposes no update or delete.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves a user's transactions, newest first.
func (r *TransactionRepository) GetTransactions(userID string) ([]model.Transaction, error) {
	query := `
          SELECT id, user_id, symbol, type, quantity, price, date,
                 asset_name, asset_type, strategy, profit_loss
          FROM "transaction"
          WHERE user_id = ?
          ORDER BY date DESC, id DESC
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		var date string
		var assetName, assetType, strategy sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Symbol,
			&t.Type,
			&t.Quantity,
			&t.Price,
			&date,
			&assetName,
			&assetType,
			&strategy,
			&t.ProfitLoss,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.AssetName = assetName.String
		t.AssetType = assetType.String
		t.Strategy = strategy.String

		if t.Date, err = ParseTime(date); err != nil {
			return nil, err
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// InsertTransaction appends one entry to the trade log.
func (r *TransactionRepository) InsertTransaction(t model.Transaction) error {
	query := `
          INSERT INTO "transaction"
              (id, user_id, symbol, type, quantity, price, date,
               asset_name, asset_type, strategy, profit_loss)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		t.ID,
		t.UserID,
		t.Symbol,
		t.Type,
		t.Quantity,
		t.Price,
		t.Date.UTC().Format("2006-01-02 15:04:05"),
		nullableString(t.AssetName),
		nullableString(t.AssetType),
		nullableString(t.Strategy),
		t.ProfitLoss,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

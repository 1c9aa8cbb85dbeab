package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// AutoTradeRepository provides data access methods for the auto_trade_settings
// and exchange_credential tables.
type AutoTradeRepository struct {
	db *sql.DB
}

// NewAutoTradeRepository creates a new AutoTradeRepository with the provided database connection.
func NewAutoTradeRepository(db *sql.DB) *AutoTradeRepository {
	return &AutoTradeRepository{db: db}
}

const settingsColumns = `id, user_id, enabled, take_profit_percentage, stop_loss_percentage,
          auto_cashout_enabled, cashout_percentage, min_profit_to_cashout,
          max_position_size, trading_pairs`

// GetSettings retrieves a user's auto-trade settings row.
// Returns sql.ErrNoRows wrapped as a miss so the service can create defaults.
func (r *AutoTradeRepository) GetSettings(userID string) (model.AutoTradeSettings, bool, error) {
	query := `
          SELECT ` + settingsColumns + `
          FROM auto_trade_settings
          WHERE user_id = ?
      `
	var s model.AutoTradeSettings

	err := r.db.QueryRow(query, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.Enabled,
		&s.TakeProfitPercentage,
		&s.StopLossPercentage,
		&s.AutoCashoutEnabled,
		&s.CashoutPercentage,
		&s.MinProfitToCashout,
		&s.MaxPositionSize,
		&s.TradingPairsRaw,
	)
	if err == sql.ErrNoRows {
		return model.AutoTradeSettings{}, false, nil
	}
	if err != nil {
		return model.AutoTradeSettings{}, false, fmt.Errorf("failed to query auto_trade_settings: %w", err)
	}

	return s, true, nil
}

// InsertSettings creates a settings row. The user_id column is UNIQUE; a
// concurrent first-read race surfaces as apperrors.ErrDuplicateEntry.
func (r *AutoTradeRepository) InsertSettings(s model.AutoTradeSettings) error {
	query := `
          INSERT INTO auto_trade_settings (` + settingsColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		s.ID,
		s.UserID,
		s.Enabled,
		s.TakeProfitPercentage,
		s.StopLossPercentage,
		s.AutoCashoutEnabled,
		s.CashoutPercentage,
		s.MinProfitToCashout,
		s.MaxPositionSize,
		s.TradingPairsRaw,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert auto_trade_settings: %w", err)
	}
	return nil
}

// UpdateSettings overwrites all configurable fields of a settings row.
func (r *AutoTradeRepository) UpdateSettings(s model.AutoTradeSettings) error {
	query := `
          UPDATE auto_trade_settings
          SET enabled = ?, take_profit_percentage = ?, stop_loss_percentage = ?,
              auto_cashout_enabled = ?, cashout_percentage = ?, min_profit_to_cashout = ?,
              max_position_size = ?, trading_pairs = ?
          WHERE user_id = ?
      `
	_, err := r.db.Exec(
		query,
		s.Enabled,
		s.TakeProfitPercentage,
		s.StopLossPercentage,
		s.AutoCashoutEnabled,
		s.CashoutPercentage,
		s.MinProfitToCashout,
		s.MaxPositionSize,
		s.TradingPairsRaw,
		s.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update auto_trade_settings: %w", err)
	}
	return nil
}

// GetCredentials retrieves a user's exchange credentials.
// When activeOnly is set, deactivated credentials are filtered out.
func (r *AutoTradeRepository) GetCredentials(userID string, activeOnly bool) ([]model.ExchangeCredential, error) {
	query := `
          SELECT id, user_id, exchange_id, api_key_enc, api_secret_enc, is_active, created_at
          FROM exchange_credential
          WHERE user_id = ?
      `
	args := []any{userID}

	if activeOnly {
		query += " AND is_active = ?"
		args = append(args, 1)
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_credential table: %w", err)
	}
	defer rows.Close()

	credentials := []model.ExchangeCredential{}
	for rows.Next() {
		var c model.ExchangeCredential
		var createdAt string

		err := rows.Scan(&c.ID, &c.UserID, &c.ExchangeID, &c.APIKeyEnc, &c.APISecretEnc, &c.IsActive, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange_credential table results: %w", err)
		}

		if c.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		credentials = append(credentials, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_credential table: %w", err)
	}

	return credentials, nil
}

// InsertCredential stores an encrypted exchange credential.
func (r *AutoTradeRepository) InsertCredential(c model.ExchangeCredential) error {
	query := `
          INSERT INTO exchange_credential
              (id, user_id, exchange_id, api_key_enc, api_secret_enc, is_active, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		c.ID,
		c.UserID,
		c.ExchangeID,
		c.APIKeyEnc,
		c.APISecretEnc,
		c.IsActive,
		c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange_credential: %w", err)
	}
	return nil
}

// SetCredentialActive flips the active flag on a credential.
func (r *AutoTradeRepository) SetCredentialActive(userID, credentialID string, active bool) error {
	query := `
          UPDATE exchange_credential
          SET is_active = ?
          WHERE id = ? AND user_id = ?
      `
	result, err := r.db.Exec(query, active, credentialID, userID)
	if err != nil {
		return fmt.Errorf("failed to update exchange_credential: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCredentialNotFound
	}
	return nil
}

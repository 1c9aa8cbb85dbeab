package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// AssetRepository provides data access methods for the asset table.
// All reads are scoped to a single owning user; no cross-user access.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, user_id, name, symbol, asset_type, quantity, buy_price,
          coin_id, purchase_date, notes, location, broker, currency`

// GetAssets retrieves all assets belonging to a user, ordered by purchase date
// then insertion order so valuations are deterministic.
func (r *AssetRepository) GetAssets(userID string) ([]model.Asset, error) {
	query := `
          SELECT ` + assetColumns + `
          FROM asset
          WHERE user_id = ?
          ORDER BY purchase_date, id
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetAssetOnID retrieves one asset, verifying ownership.
func (r *AssetRepository) GetAssetOnID(userID, assetID string) (model.Asset, error) {
	query := `
          SELECT ` + assetColumns + `
          FROM asset
          WHERE id = ? AND user_id = ?
      `
	rows, err := r.db.Query(query, assetID, userID)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to query asset: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Asset{}, fmt.Errorf("error iterating asset table: %w", err)
		}
		return model.Asset{}, apperrors.ErrAssetNotFound
	}

	return scanAsset(rows)
}

// GetAssetBySymbol retrieves a user's asset by ticker symbol.
// Used by CSV import to merge rows into existing positions.
func (r *AssetRepository) GetAssetBySymbol(userID, symbol string) (model.Asset, error) {
	query := `
          SELECT ` + assetColumns + `
          FROM asset
          WHERE user_id = ? AND symbol = ?
          ORDER BY purchase_date, id
          LIMIT 1
      `
	rows, err := r.db.Query(query, userID, symbol)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to query asset by symbol: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Asset{}, fmt.Errorf("error iterating asset table: %w", err)
		}
		return model.Asset{}, apperrors.ErrAssetNotFound
	}

	return scanAsset(rows)
}

// InsertAsset creates a new asset row.
func (r *AssetRepository) InsertAsset(asset model.Asset) error {
	query := `
          INSERT INTO asset (` + assetColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		asset.ID,
		asset.UserID,
		asset.Name,
		asset.Symbol,
		asset.AssetType,
		asset.Quantity,
		asset.BuyPrice,
		nullableString(asset.CoinID),
		asset.PurchaseDate.UTC().Format("2006-01-02"),
		nullableString(asset.Notes),
		nullableString(asset.Location),
		nullableString(asset.Broker),
		asset.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// UpdateAsset overwrites all mutable fields of an asset, verifying ownership.
func (r *AssetRepository) UpdateAsset(asset model.Asset) error {
	query := `
          UPDATE asset
          SET name = ?, symbol = ?, asset_type = ?, quantity = ?, buy_price = ?,
              coin_id = ?, purchase_date = ?, notes = ?, location = ?, broker = ?, currency = ?
          WHERE id = ? AND user_id = ?
      `
	result, err := r.db.Exec(
		query,
		asset.Name,
		asset.Symbol,
		asset.AssetType,
		asset.Quantity,
		asset.BuyPrice,
		nullableString(asset.CoinID),
		asset.PurchaseDate.UTC().Format("2006-01-02"),
		nullableString(asset.Notes),
		nullableString(asset.Location),
		nullableString(asset.Broker),
		asset.Currency,
		asset.ID,
		asset.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// DeleteAsset removes an asset, verifying ownership.
func (r *AssetRepository) DeleteAsset(userID, assetID string) error {
	result, err := r.db.Exec(`DELETE FROM asset WHERE id = ? AND user_id = ?`, assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// scanAsset scans the current row of an asset query.
func scanAsset(rows *sql.Rows) (model.Asset, error) {
	var a model.Asset
	var coinID, notes, location, broker sql.NullString
	var purchaseDate string

	err := rows.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Symbol,
		&a.AssetType,
		&a.Quantity,
		&a.BuyPrice,
		&coinID,
		&purchaseDate,
		&notes,
		&location,
		&broker,
		&a.Currency,
	)
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan asset table results: %w", err)
	}

	a.CoinID = coinID.String
	a.Notes = notes.String
	a.Location = location.String
	a.Broker = broker.String

	if a.PurchaseDate, err = ParseTime(purchaseDate); err != nil {
		return model.Asset{}, err
	}

	return a, nil
}

// nullableString maps "" to NULL for optional text columns.
func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

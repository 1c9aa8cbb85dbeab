package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	asset := testutil.NewAsset(user.ID).
//	    WithSymbol("BTC").
//	    WithCoinID("bitcoin").
//	    WithQuantity(2).
//	    WithBuyPrice(100).
//	    Build(t, db)
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset(userID string) *AssetBuilder {
	return &AssetBuilder{
		asset: model.Asset{
			ID:           MakeID(),
			UserID:       userID,
			Name:         "Test Asset",
			Symbol:       "TST",
			AssetType:    model.AssetTypeCrypto,
			Quantity:     1,
			BuyPrice:     100,
			PurchaseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Currency:     "EUR",
		},
	}
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.asset.Name = name
	return b
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.asset.Symbol = symbol
	return b
}

// WithType sets the asset class.
func (b *AssetBuilder) WithType(assetType string) *AssetBuilder {
	b.asset.AssetType = assetType
	return b
}

// WithCoinID sets the price lookup key.
func (b *AssetBuilder) WithCoinID(coinID string) *AssetBuilder {
	b.asset.CoinID = coinID
	return b
}

// WithQuantity sets the quantity.
func (b *AssetBuilder) WithQuantity(quantity float64) *AssetBuilder {
	b.asset.Quantity = quantity
	return b
}

// WithBuyPrice sets the purchase price.
func (b *AssetBuilder) WithBuyPrice(price float64) *AssetBuilder {
	b.asset.BuyPrice = price
	return b
}

// Model returns the built asset without persisting it.
func (b *AssetBuilder) Model() model.Asset {
	return b.asset
}

// Build persists the asset and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	if err := repository.NewAssetRepository(db).InsertAsset(b.asset); err != nil {
		t.Fatalf("Failed to insert test asset: %v", err)
	}
	return b.asset
}

// CreateTestSnapshot inserts one snapshot row directly.
func CreateTestSnapshot(t *testing.T, db *sql.DB, userID string, date time.Time, totalValue float64) model.PortfolioSnapshot {
	t.Helper()

	snapshot := model.PortfolioSnapshot{
		ID:         MakeID(),
		UserID:     userID,
		Date:       date,
		TotalValue: totalValue,
	}
	if err := repository.NewSnapshotRepository(db).InsertSnapshot(snapshot); err != nil {
		t.Fatalf("Failed to insert test snapshot: %v", err)
	}
	return snapshot
}

// CreateTestTransaction inserts one transaction row directly.
func CreateTestTransaction(t *testing.T, db *sql.DB, tx model.Transaction) model.Transaction {
	t.Helper()

	if tx.ID == "" {
		tx.ID = MakeID()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	if err := repository.NewTransactionRepository(db).InsertTransaction(tx); err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}
	return tx
}

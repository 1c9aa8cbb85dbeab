package service_test

import (
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestAssetService_CreateAsset tests asset creation side effects.
//
// WHY: Creating an asset must leave a matching buy entry in the trade log and
// resolve crypto lookup keys from the symbol, without failing when the key
// cannot be resolved.
func TestAssetService_CreateAsset(t *testing.T) {
	t.Run("records a buy transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient()
		svc := testutil.NewTestAssetService(t, db, gecko)

		created, err := svc.CreateAsset(model.Asset{
			UserID:    user.ID,
			Name:      "Bitcoin",
			Symbol:    "btc",
			AssetType: model.AssetTypeCrypto,
			Quantity:  2,
			BuyPrice:  100,
		})
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}

		if created.Symbol != "BTC" {
			t.Errorf("Expected symbol upper-cased to BTC, got %s", created.Symbol)
		}
		if created.CoinID != "bitcoin" {
			t.Errorf("Expected resolved coin id bitcoin, got %s", created.CoinID)
		}

		transactions, err := repository.NewTransactionRepository(db).GetTransactions(user.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}
		tx := transactions[0]
		if tx.Type != model.TransactionTypeBuy || tx.Quantity != 2 || tx.Price != 100 {
			t.Errorf("Unexpected buy transaction: %+v", tx)
		}
	})

	t.Run("unresolvable symbol leaves lookup key empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient()
		svc := testutil.NewTestAssetService(t, db, gecko)

		created, err := svc.CreateAsset(model.Asset{
			UserID:    user.ID,
			Name:      "Obscure Coin",
			Symbol:    "XXXX",
			AssetType: model.AssetTypeCrypto,
			Quantity:  1,
			BuyPrice:  10,
		})
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}
		if created.CoinID != "" {
			t.Errorf("Expected empty coin id, got %s", created.CoinID)
		}
	})
}

// TestAssetService_DeleteAsset tests the sell-on-delete behavior.
//
// WHY: Deleting an asset is a disposal: the trade log must record a sell at
// the live price resolved at that moment, carrying the realized difference
// against the cost basis.
func TestAssetService_DeleteAsset(t *testing.T) {
	t.Run("records sell at live price with realized profit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient().WithPrice("bitcoin", 150)
		svc := testutil.NewTestAssetService(t, db, gecko)

		asset := testutil.NewAsset(user.ID).
			WithSymbol("BTC").
			WithCoinID("bitcoin").
			WithQuantity(2).
			WithBuyPrice(100).
			Build(t, db)

		if err := svc.DeleteAsset(user.ID, asset.ID); err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		if _, err := repository.NewAssetRepository(db).GetAssetOnID(user.ID, asset.ID); err == nil {
			t.Error("Expected asset to be gone")
		}

		transactions, err := repository.NewTransactionRepository(db).GetTransactions(user.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}
		tx := transactions[0]
		if tx.Type != model.TransactionTypeSell {
			t.Errorf("Expected sell, got %s", tx.Type)
		}
		if tx.Price != 150 {
			t.Errorf("Expected sale at live price 150, got %f", tx.Price)
		}
		if tx.ProfitLoss != 100 {
			t.Errorf("Expected realized profit 100, got %f", tx.ProfitLoss)
		}
	})

	t.Run("falls back to purchase price without a quote", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient()
		delete(gecko.Prices, "bitcoin")
		svc := testutil.NewTestAssetService(t, db, gecko)

		asset := testutil.NewAsset(user.ID).
			WithCoinID("bitcoin").
			WithQuantity(3).
			WithBuyPrice(50).
			Build(t, db)

		if err := svc.DeleteAsset(user.ID, asset.ID); err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		transactions, _ := repository.NewTransactionRepository(db).GetTransactions(user.ID)
		if len(transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(transactions))
		}
		if transactions[0].Price != 50 {
			t.Errorf("Expected fallback sale price 50, got %f", transactions[0].Price)
		}
		if transactions[0].ProfitLoss != 0 {
			t.Errorf("Expected zero realized profit on fallback, got %f", transactions[0].ProfitLoss)
		}
	})

	t.Run("deleting an unknown asset fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAssetService(t, db, testutil.NewMockPriceClient())

		if err := svc.DeleteAsset(user.ID, testutil.MakeID()); err == nil {
			t.Error("Expected error deleting unknown asset")
		}
	})
}

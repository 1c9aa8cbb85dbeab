package service_test

import (
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestAutoTradeService_GetSettings tests defaults-on-first-read.
//
// WHY: The settings endpoint must never 404: the first read provisions the
// row with documented defaults, and later reads return the stored values.
func TestAutoTradeService_GetSettings(t *testing.T) {
	t.Run("first read creates defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		settings, err := svc.GetSettings(user.ID)
		if err != nil {
			t.Fatalf("GetSettings() returned unexpected error: %v", err)
		}

		if settings.Enabled {
			t.Error("Expected auto-trading disabled by default")
		}
		if settings.TakeProfitPercentage != 5.0 || settings.StopLossPercentage != 3.0 {
			t.Errorf("Unexpected default thresholds: %+v", settings)
		}
		if settings.CashoutPercentage != 50.0 || settings.MinProfitToCashout != 100.0 || settings.MaxPositionSize != 1000.0 {
			t.Errorf("Unexpected default amounts: %+v", settings)
		}
	})

	t.Run("second read returns the same row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		first, err := svc.GetSettings(user.ID)
		if err != nil {
			t.Fatalf("First GetSettings() returned unexpected error: %v", err)
		}
		second, err := svc.GetSettings(user.ID)
		if err != nil {
			t.Fatalf("Second GetSettings() returned unexpected error: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("Expected one settings row, got IDs %s and %s", first.ID, second.ID)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		settings, _ := svc.GetSettings(user.ID)
		settings.Enabled = true
		settings.TakeProfitPercentage = 8
		settings.TradingPairsRaw = "BTC/EUR,ETH/EUR"

		if _, err := svc.UpdateSettings(settings); err != nil {
			t.Fatalf("UpdateSettings() returned unexpected error: %v", err)
		}

		reread, _ := svc.GetSettings(user.ID)
		if !reread.Enabled || reread.TakeProfitPercentage != 8 {
			t.Errorf("Update not persisted: %+v", reread)
		}
		pairs := reread.TradingPairs()
		if len(pairs) != 2 || pairs[0] != "BTC/EUR" {
			t.Errorf("Unexpected trading pairs: %v", pairs)
		}
	})
}

// TestAutoTradeService_GetStats tests the derived statistics.
//
// WHY: Stats must count only auto-trade entries from the shared trade log
// and derive profit, cashout totals and success rate from them.
func TestAutoTradeService_GetStats(t *testing.T) {
	t.Run("aggregates auto-trade transactions only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		testutil.CreateTestTransaction(t, db, model.Transaction{
			UserID: user.ID, Symbol: "BTC", Type: model.TransactionTypeSell,
			Quantity: 1, Price: 100, Strategy: model.StrategyAutoTrade, ProfitLoss: 20,
		})
		testutil.CreateTestTransaction(t, db, model.Transaction{
			UserID: user.ID, Symbol: "ETH", Type: model.TransactionTypeCashout,
			Quantity: 2, Price: 50, Strategy: model.StrategyAutoTrade, ProfitLoss: -10,
		})
		// Manual trade, must not count.
		testutil.CreateTestTransaction(t, db, model.Transaction{
			UserID: user.ID, Symbol: "BTC", Type: model.TransactionTypeBuy,
			Quantity: 1, Price: 90,
		})

		stats, err := svc.GetStats(user.ID)
		if err != nil {
			t.Fatalf("GetStats() returned unexpected error: %v", err)
		}

		if stats.TotalAutoTrades != 2 {
			t.Errorf("Expected 2 auto trades, got %d", stats.TotalAutoTrades)
		}
		if stats.TotalCashouts != 1 {
			t.Errorf("Expected 1 cashout, got %d", stats.TotalCashouts)
		}
		if stats.TotalProfit != 10 {
			t.Errorf("Expected total profit 10, got %f", stats.TotalProfit)
		}
		if stats.TotalCashedOut != 100 {
			t.Errorf("Expected cashed out 100, got %f", stats.TotalCashedOut)
		}
		if stats.SuccessRate != 50 {
			t.Errorf("Expected success rate 50, got %f", stats.SuccessRate)
		}
	})
}

// TestAutoTradeService_ConnectExchange tests credential storage.
//
// WHY: Secrets must never be stored in plaintext, and a credential that
// fails verification must be kept but deactivated.
func TestAutoTradeService_ConnectExchange(t *testing.T) {
	t.Run("stores encrypted credentials and verifies them", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		credential, verified, err := svc.ConnectExchange(user.ID, "binance", "my-key", "my-secret")
		if err != nil {
			t.Fatalf("ConnectExchange() returned unexpected error: %v", err)
		}
		if !verified {
			t.Error("Expected credential to verify")
		}
		if !credential.IsActive {
			t.Error("Expected credential active")
		}
		if credential.APIKeyEnc == "my-key" || credential.APISecretEnc == "my-secret" {
			t.Error("Credentials stored in plaintext")
		}

		stored, err := svc.GetCredentials(user.ID)
		if err != nil {
			t.Fatalf("GetCredentials() returned unexpected error: %v", err)
		}
		if len(stored) != 1 || stored[0].ExchangeID != "binance" {
			t.Errorf("Unexpected stored credentials: %+v", stored)
		}
	})

	t.Run("rejects missing key or secret", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := testutil.NewTestAutoTradeService(t, db)

		if _, _, err := svc.ConnectExchange(user.ID, "binance", "", "secret"); err == nil {
			t.Error("Expected error for missing key")
		}
		if _, _, err := svc.ConnectExchange(user.ID, "binance", "key", ""); err == nil {
			t.Error("Expected error for missing secret")
		}
	})
}

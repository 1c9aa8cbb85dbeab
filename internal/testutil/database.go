package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Each pool connection gets its own :memory: database, so a second
	// connection would see no schema at all.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
//
//nolint:funlen // Database schema DDL
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			username VARCHAR(80) NOT NULL UNIQUE,
			language VARCHAR(2) NOT NULL DEFAULT 'fr',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			quantity FLOAT NOT NULL,
			buy_price FLOAT NOT NULL,
			coin_id VARCHAR(100),
			purchase_date DATE NOT NULL,
			notes TEXT,
			location VARCHAR(100),
			broker VARCHAR(100),
			currency VARCHAR(3) NOT NULL DEFAULT 'USD',
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Quoted because transaction is a reserved keyword
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			type VARCHAR(20) NOT NULL,
			quantity FLOAT NOT NULL,
			price FLOAT NOT NULL,
			date DATETIME NOT NULL,
			asset_name VARCHAR(100),
			asset_type VARCHAR(20),
			strategy VARCHAR(20),
			profit_loss FLOAT NOT NULL DEFAULT 0,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE goal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			title VARCHAR(100) NOT NULL,
			category VARCHAR(50),
			target_amount FLOAT NOT NULL,
			current_amount FLOAT NOT NULL,
			deadline VARCHAR(10),
			description TEXT,
			status VARCHAR(10) NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE alert (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			coin_id VARCHAR(100) NOT NULL,
			target_price FLOAT NOT NULL,
			condition VARCHAR(5) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE simulation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			investment FLOAT NOT NULL,
			quantity FLOAT NOT NULL,
			current_price FLOAT NOT NULL,
			current_value FLOAT NOT NULL,
			profit_loss FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE dividend (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			asset_name VARCHAR(100) NOT NULL,
			amount FLOAT NOT NULL,
			payment_date DATETIME NOT NULL,
			status VARCHAR(10) NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE portfolio_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			total_value FLOAT NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			CONSTRAINT unique_user_snapshot_date UNIQUE (user_id, date)
		);

		CREATE TABLE auto_trade_settings (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL UNIQUE,
			enabled BOOLEAN NOT NULL DEFAULT 0,
			take_profit_percentage FLOAT NOT NULL DEFAULT 5.0,
			stop_loss_percentage FLOAT NOT NULL DEFAULT 3.0,
			auto_cashout_enabled BOOLEAN NOT NULL DEFAULT 0,
			cashout_percentage FLOAT NOT NULL DEFAULT 50.0,
			min_profit_to_cashout FLOAT NOT NULL DEFAULT 100.0,
			max_position_size FLOAT NOT NULL DEFAULT 1000.0,
			trading_pairs VARCHAR(255) NOT NULL DEFAULT '',
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE exchange_credential (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			exchange_id VARCHAR(50) NOT NULL,
			api_key_enc TEXT NOT NULL,
			api_secret_enc TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);
	`

	_, err := db.Exec(schema)
	return err
}

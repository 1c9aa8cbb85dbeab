package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/security"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// TestFernetKey is a throwaway development key for vault tests.
const TestFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// MakeID returns a fresh UUID string.
func MakeID() string {
	return uuid.New().String()
}

// CreateTestUser inserts a user with a unique username and returns it.
func CreateTestUser(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	user := model.User{
		ID:        MakeID(),
		Username:  "user-" + uuid.New().String()[:8],
		Language:  "en",
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.NewUserRepository(db).InsertUser(user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// NewTestSnapshotService builds a SnapshotService with a fixed random seed so
// synthetic backfills are reproducible.
func NewTestSnapshotService(t *testing.T, db *sql.DB, seed int64) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	return service.NewSnapshotService(db, snapshotRepo, rand.New(rand.NewSource(seed)))
}

// NewTestDashboardService wires a DashboardService against the mock price
// client.
func NewTestDashboardService(t *testing.T, db *sql.DB, gecko *MockPriceClient) *service.DashboardService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	valuationService := service.NewValuationService(gecko)
	snapshotService := NewTestSnapshotService(t, db, 1)

	return service.NewDashboardService(assetRepo, valuationService, snapshotService)
}

// NewTestAssetService wires an AssetService against the mock price client.
func NewTestAssetService(t *testing.T, db *sql.DB, gecko *MockPriceClient) *service.AssetService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewAssetService(assetRepo, transactionRepo, gecko)
}

// NewTestImportExportService wires an ImportExportService.
func NewTestImportExportService(t *testing.T, db *sql.DB) *service.ImportExportService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewImportExportService(assetRepo, transactionRepo)
}

// NewTestAutoTradeService wires an AutoTradeService with the test vault key.
func NewTestAutoTradeService(t *testing.T, db *sql.DB) *service.AutoTradeService {
	t.Helper()

	vault, err := security.NewVault(TestFernetKey)
	if err != nil {
		t.Fatalf("Failed to create test vault: %v", err)
	}
	autoTradeRepo := repository.NewAutoTradeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewAutoTradeService(autoTradeRepo, transactionRepo, vault)
}

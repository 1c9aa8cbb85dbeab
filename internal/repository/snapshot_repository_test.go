package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestSnapshotRepository tests the daily-uniqueness contract of the snapshot
// store.
//
// WHY: The one-row-per-user-per-day guarantee is enforced at the database
// level; the repository must surface that violation as ErrDuplicateEntry so
// the service layer can fall back to an update.
func TestSnapshotRepository(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("rejects a second row for the same user and day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		repo := repository.NewSnapshotRepository(db)

		first := model.PortfolioSnapshot{ID: testutil.MakeID(), UserID: user.ID, Date: day, TotalValue: 100}
		if err := repo.InsertSnapshot(first); err != nil {
			t.Fatalf("InsertSnapshot() returned unexpected error: %v", err)
		}

		dup := model.PortfolioSnapshot{ID: testutil.MakeID(), UserID: user.ID, Date: day, TotalValue: 200}
		err := repo.InsertSnapshot(dup)
		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Errorf("Expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("allows the same day for different users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		repo := repository.NewSnapshotRepository(db)

		if err := repo.InsertSnapshot(model.PortfolioSnapshot{ID: testutil.MakeID(), UserID: alice.ID, Date: day, TotalValue: 100}); err != nil {
			t.Fatalf("InsertSnapshot() for alice returned unexpected error: %v", err)
		}
		if err := repo.InsertSnapshot(model.PortfolioSnapshot{ID: testutil.MakeID(), UserID: bob.ID, Date: day, TotalValue: 200}); err != nil {
			t.Errorf("InsertSnapshot() for bob returned unexpected error: %v", err)
		}
	})

	t.Run("updating a missing day reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		repo := repository.NewSnapshotRepository(db)

		err := repo.UpdateSnapshotValue(user.ID, "2026-03-10", 500)
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("ListRecent returns the newest N in ascending order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		repo := repository.NewSnapshotRepository(db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestSnapshot(t, db, user.ID, day.AddDate(0, 0, i), float64(i))
		}

		snapshots, err := repo.ListRecent(user.ID, 3)
		if err != nil {
			t.Fatalf("ListRecent() returned unexpected error: %v", err)
		}

		if len(snapshots) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(snapshots))
		}
		for i, want := range []float64{2, 3, 4} {
			if snapshots[i].TotalValue != want {
				t.Errorf("Snapshot %d: expected value %f, got %f", i, want, snapshots[i].TotalValue)
			}
		}
	})
}

package service_test

import (
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestUserService_EnsureDefaultUser tests default account provisioning.
//
// WHY: Startup provisions the default account; doing it twice must be
// idempotent or every restart would fail on the username constraint.
func TestUserService_EnsureDefaultUser(t *testing.T) {
	t.Run("creates the default account once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewUserService(repository.NewUserRepository(db))

		first, err := svc.EnsureDefaultUser()
		if err != nil {
			t.Fatalf("EnsureDefaultUser() returned unexpected error: %v", err)
		}
		if first.Username != "admin" {
			t.Errorf("Expected username admin, got %s", first.Username)
		}

		second, err := svc.EnsureDefaultUser()
		if err != nil {
			t.Fatalf("Second EnsureDefaultUser() returned unexpected error: %v", err)
		}
		if second.ID != first.ID {
			t.Errorf("Expected same account, got %s and %s", first.ID, second.ID)
		}
	})
}

// TestUserService_ResolveUser tests acting-user resolution.
//
// WHY: Requests without an explicit user header act as the default user;
// unknown IDs must be rejected, not silently mapped.
func TestUserService_ResolveUser(t *testing.T) {
	t.Run("empty ID resolves to the default user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewUserService(repository.NewUserRepository(db))

		user, err := svc.ResolveUser("")
		if err != nil {
			t.Fatalf("ResolveUser() returned unexpected error: %v", err)
		}
		if user.Username != "admin" {
			t.Errorf("Expected default user, got %s", user.Username)
		}
	})

	t.Run("explicit ID resolves that account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewUserService(repository.NewUserRepository(db))
		other := testutil.CreateTestUser(t, db)

		user, err := svc.ResolveUser(other.ID)
		if err != nil {
			t.Fatalf("ResolveUser() returned unexpected error: %v", err)
		}
		if user.ID != other.ID {
			t.Errorf("Expected user %s, got %s", other.ID, user.ID)
		}
	})

	t.Run("unknown ID fails", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewUserService(repository.NewUserRepository(db))

		if _, err := svc.ResolveUser(testutil.MakeID()); err == nil {
			t.Error("Expected error for unknown user ID")
		}
	})
}

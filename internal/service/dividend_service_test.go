package service_test

import (
	"testing"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestDividendService_GetSummary tests the upcoming/received split.
//
// WHY: Status is derived from the payment date at read time, so a dividend
// flips from upcoming to received as time passes without any write.
func TestDividendService_GetSummary(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("splits totals on the payment date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := service.NewDividendService(repository.NewDividendRepository(db))

		if _, err := svc.CreateDividend(model.Dividend{
			UserID: user.ID, AssetName: "MSCI World", Amount: 50,
			PaymentDate: now.AddDate(0, 0, -10),
		}, now); err != nil {
			t.Fatalf("CreateDividend() returned unexpected error: %v", err)
		}
		if _, err := svc.CreateDividend(model.Dividend{
			UserID: user.ID, AssetName: "MSCI World", Amount: 60,
			PaymentDate: now.AddDate(0, 0, 20),
		}, now); err != nil {
			t.Fatalf("CreateDividend() returned unexpected error: %v", err)
		}

		summary, err := svc.GetSummary(user.ID, now)
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TotalReceived != 50 {
			t.Errorf("Expected received total 50, got %f", summary.TotalReceived)
		}
		if summary.TotalUpcoming != 60 {
			t.Errorf("Expected upcoming total 60, got %f", summary.TotalUpcoming)
		}
	})

	t.Run("upcoming dividend flips to received once its date passes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		svc := service.NewDividendService(repository.NewDividendRepository(db))

		created, err := svc.CreateDividend(model.Dividend{
			UserID: user.ID, AssetName: "S&P 500", Amount: 30,
			PaymentDate: now.AddDate(0, 0, 5),
		}, now)
		if err != nil {
			t.Fatalf("CreateDividend() returned unexpected error: %v", err)
		}
		if created.Status != model.DividendStatusUpcoming {
			t.Fatalf("Expected upcoming at creation, got %s", created.Status)
		}

		later := now.AddDate(0, 0, 10)
		summary, err := svc.GetSummary(user.ID, later)
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.Dividends[0].Status != model.DividendStatusReceived {
			t.Errorf("Expected received after date passed, got %s", summary.Dividends[0].Status)
		}
		if summary.TotalReceived != 30 || summary.TotalUpcoming != 0 {
			t.Errorf("Unexpected totals: %+v", summary)
		}
	})
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/api/handlers"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

// TestDashboardHandler_Dashboard tests the dashboard endpoint end to end
// against an in-memory database and mock price client.
//
// WHY: This is the main screen of the product; the payload must carry both
// the valuation and the history series, scoped to the acting user.
func TestDashboardHandler_Dashboard(t *testing.T) {
	t.Run("returns valuation and history for the acting user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient().WithPrice("bitcoin", 150)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db, gecko))

		testutil.NewAsset(user.ID).
			WithCoinID("bitcoin").
			WithQuantity(2).
			WithBuyPrice(100).
			Build(t, db)

		req := testutil.NewUserRequest(http.MethodGet, "/api/dashboard/", nil, user)
		w := httptest.NewRecorder()
		handler.Dashboard(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp handlers.DashboardResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if resp.Valuation.TotalValue != 300 {
			t.Errorf("Expected total 300, got %f", resp.Valuation.TotalValue)
		}
		if len(resp.Valuation.Lines) != 1 {
			t.Errorf("Expected 1 valuation line, got %d", len(resp.Valuation.Lines))
		}
		// First load backfills the full synthetic series.
		if len(resp.History) != 30 {
			t.Errorf("Expected 30 history points, got %d", len(resp.History))
		}
		if resp.History[len(resp.History)-1].Value != 300 {
			t.Errorf("Expected final history point 300, got %f", resp.History[len(resp.History)-1].Value)
		}
	})

	t.Run("empty portfolio still returns a well-formed payload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db, testutil.NewMockPriceClient()))

		req := testutil.NewUserRequest(http.MethodGet, "/api/dashboard/", nil, user)
		w := httptest.NewRecorder()
		handler.Dashboard(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var resp handlers.DashboardResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Valuation.TotalValue != 0 {
			t.Errorf("Expected zero total, got %f", resp.Valuation.TotalValue)
		}
	})
}

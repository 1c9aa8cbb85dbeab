package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/api/handlers"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/testutil"
)

func newAssetHandler(t *testing.T, db *sql.DB, gecko *testutil.MockPriceClient) *handlers.AssetHandler {
	t.Helper()
	return handlers.NewAssetHandler(
		testutil.NewTestAssetService(t, db, gecko),
		service.NewValuationService(gecko),
	)
}

// TestAssetHandler_Assets tests the asset list endpoint.
//
// WHY: The list is the holdings screen; each row must carry the stored asset
// plus its live valuation.
func TestAssetHandler_Assets(t *testing.T) {
	t.Run("enriches assets with live prices", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient().WithPrice("bitcoin", 150)
		handler := newAssetHandler(t, db, gecko)

		testutil.NewAsset(user.ID).
			WithCoinID("bitcoin").
			WithQuantity(2).
			WithBuyPrice(100).
			Build(t, db)

		req := testutil.NewUserRequest(http.MethodGet, "/api/assets/", nil, user)
		w := httptest.NewRecorder()
		handler.Assets(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var views []handlers.AssetView
		if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(views))
		}
		if views[0].CurrentPrice != 150 {
			t.Errorf("Expected live price 150, got %f", views[0].CurrentPrice)
		}
		if views[0].Value != 300 {
			t.Errorf("Expected value 300, got %f", views[0].Value)
		}
		if !views[0].LivePrice {
			t.Error("Expected the line to be marked live")
		}
	})
}

// TestAssetHandler_CreateAsset tests asset creation over HTTP, including
// validation failures.
//
// WHY: The handler is the contract with the frontend; a bad payload must map
// to 400 with field errors, a good one to 201 with the stored record.
func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("creates asset and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		body := `{"name":"Bitcoin","symbol":"btc","assetType":"crypto","quantity":0.5,"buyPrice":30000}`
		req := testutil.NewUserRequest(http.MethodPost, "/api/assets/", strings.NewReader(body), user)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Asset
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if created.Symbol != "BTC" {
			t.Errorf("Expected symbol normalized to BTC, got %s", created.Symbol)
		}
		if created.CoinID != "bitcoin" {
			t.Errorf("Expected resolved coin id bitcoin, got %s", created.CoinID)
		}
		if created.ID == "" {
			t.Error("Expected a generated asset ID")
		}
	})

	t.Run("rejects payload with missing fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		body := `{"name":"Bitcoin","assetType":"crypto"}`
		req := testutil.NewUserRequest(http.MethodPost, "/api/assets/", strings.NewReader(body), user)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if _, ok := resp.Fields["symbol"]; !ok {
			t.Errorf("Expected a field error for symbol, got %v", resp.Fields)
		}
	})

	t.Run("rejects malformed purchase date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		body := `{"name":"Bitcoin","symbol":"BTC","assetType":"crypto","quantity":1,"buyPrice":100,"purchaseDate":"15/01/2024"}`
		req := testutil.NewUserRequest(http.MethodPost, "/api/assets/", strings.NewReader(body), user)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if _, ok := resp.Fields["purchaseDate"]; !ok {
			t.Errorf("Expected a field error for purchaseDate, got %v", resp.Fields)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		req := testutil.NewUserRequest(http.MethodPost, "/api/assets/", strings.NewReader("{not json"), user)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}

// TestAssetHandler_UpdateAsset tests partial updates through the handler.
//
// WHY: Update payloads use pointer fields; an omitted field must not clobber
// the stored value.
func TestAssetHandler_UpdateAsset(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		asset := testutil.NewAsset(user.ID).WithName("Old Name").WithQuantity(2).Build(t, db)

		req := testutil.NewRequestWithURLParamsAndBody(http.MethodPut, "/api/assets/"+asset.ID, map[string]string{"uuid": asset.ID}, strings.NewReader(`{"quantity":5}`))
		req = testutil.AsUser(req, user)
		w := httptest.NewRecorder()
		handler.UpdateAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.Asset
		if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if updated.Quantity != 5 {
			t.Errorf("Expected quantity 5, got %f", updated.Quantity)
		}
		if updated.Name != "Old Name" {
			t.Errorf("Expected name to survive the partial update, got %s", updated.Name)
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		handler := newAssetHandler(t, db, testutil.NewMockPriceClient())

		req := testutil.NewRequestWithURLParamsAndBody(http.MethodPut, "/api/assets/"+testutil.MakeID(), map[string]string{"uuid": testutil.MakeID()}, strings.NewReader(`{"quantity":5}`))
		req = testutil.AsUser(req, user)
		w := httptest.NewRecorder()
		handler.UpdateAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestAssetHandler_DeleteAsset tests asset deletion through the handler.
func TestAssetHandler_DeleteAsset(t *testing.T) {
	t.Run("deletes and responds 204", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		gecko := testutil.NewMockPriceClient()
		assetService := testutil.NewTestAssetService(t, db, gecko)
		handler := handlers.NewAssetHandler(assetService, service.NewValuationService(gecko))

		asset := testutil.NewAsset(user.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/assets/"+asset.ID, map[string]string{"uuid": asset.ID})
		req = testutil.AsUser(req, user)
		w := httptest.NewRecorder()
		handler.DeleteAsset(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		remaining, err := assetService.GetAssets(user.ID)
		if err != nil {
			t.Fatalf("Failed to list assets: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("Expected no assets after delete, got %d", len(remaining))
		}
	})
}

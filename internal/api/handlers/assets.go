package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetService     *service.AssetService
	valuationService *service.ValuationService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService, valuationService *service.ValuationService) *AssetHandler {
	return &AssetHandler{
		assetService:     assetService,
		valuationService: valuationService,
	}
}

// AssetView is a stored asset enriched with its current valuation.
type AssetView struct {
	model.Asset
	CurrentPrice      float64 `json:"currentPrice"`
	LivePrice         bool    `json:"livePrice"`
	Value             float64 `json:"value"`
	ProfitLoss        float64 `json:"profitLoss"`
	ProfitLossPercent float64 `json:"profitLossPercent"`
}

// Assets returns the acting user's assets with live prices resolved.
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.GetAssets(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve assets")
		return
	}

	valuation := h.valuationService.Valuate(assets)
	views := make([]AssetView, len(assets))
	for i, asset := range assets {
		line := valuation.Lines[i]
		views[i] = AssetView{
			Asset:             asset,
			CurrentPrice:      line.CurrentPrice,
			LivePrice:         line.LivePrice,
			Value:             line.Value,
			ProfitLoss:        line.ProfitLoss,
			ProfitLossPercent: line.ProfitLossPercent,
		}
	}
	respondJSON(w, http.StatusOK, views)
}

// CreateAsset creates an asset from the request payload and responds with
// the stored record.
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateCreateAsset(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	asset := model.Asset{
		UserID:    requestUserID(r),
		Name:      req.Name,
		Symbol:    req.Symbol,
		AssetType: req.AssetType,
		Quantity:  req.Quantity,
		BuyPrice:  req.BuyPrice,
		CoinID:    req.CoinID,
		Notes:     req.Notes,
		Location:  req.Location,
		Broker:    req.Broker,
		Currency:  req.Currency,
	}
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			respondServiceError(w, &validation.Error{
				Fields: map[string]string{"purchaseDate": "must be a date in YYYY-MM-DD format"},
			}, "validation failed")
			return
		}
		asset.PurchaseDate = parsed
	}

	created, err := h.assetService.CreateAsset(asset)
	if err != nil {
		respondServiceError(w, err, "Failed to create asset")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateAsset applies a partial update to an asset owned by the acting user.
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateUpdateAsset(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	userID := requestUserID(r)
	current, err := h.assetService.GetAsset(userID, chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve asset")
		return
	}

	applyAssetUpdate(&current, req)

	updated, err := h.assetService.UpdateAsset(current)
	if err != nil {
		respondServiceError(w, err, "Failed to update asset")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteAsset removes an asset, recording the disposal as a sell.
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.assetService.DeleteAsset(requestUserID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err, "Failed to delete asset")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func applyAssetUpdate(asset *model.Asset, req request.UpdateAssetRequest) {
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Symbol != nil {
		asset.Symbol = *req.Symbol
	}
	if req.AssetType != nil {
		asset.AssetType = *req.AssetType
	}
	if req.Quantity != nil {
		asset.Quantity = *req.Quantity
	}
	if req.BuyPrice != nil {
		asset.BuyPrice = *req.BuyPrice
	}
	if req.CoinID != nil {
		asset.CoinID = *req.CoinID
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	if req.Broker != nil {
		asset.Broker = *req.Broker
	}
	if req.Currency != nil {
		asset.Currency = *req.Currency
	}
}

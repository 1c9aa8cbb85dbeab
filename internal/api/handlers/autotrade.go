package handlers

import (
	"net/http"
	"strings"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// AutoTradeHandler handles auto-trading configuration HTTP requests.
type AutoTradeHandler struct {
	autoTradeService *service.AutoTradeService
}

// NewAutoTradeHandler creates a new AutoTradeHandler
func NewAutoTradeHandler(autoTradeService *service.AutoTradeService) *AutoTradeHandler {
	return &AutoTradeHandler{
		autoTradeService: autoTradeService,
	}
}

// settingsResponse is the settings payload with the pairs split out.
type settingsResponse struct {
	model.AutoTradeSettings
	TradingPairs []string `json:"tradingPairs"`
}

// Settings returns the acting user's auto-trade settings, creating defaults
// on first read.
func (h *AutoTradeHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.autoTradeService.GetSettings(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve settings")
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse{
		AutoTradeSettings: settings,
		TradingPairs:      settings.TradingPairs(),
	})
}

// UpdateSettings applies a partial update to the acting user's settings.
func (h *AutoTradeHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAutoTradeSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateUpdateAutoTradeSettings(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	current, err := h.autoTradeService.GetSettings(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve settings")
		return
	}

	if req.Enabled != nil {
		current.Enabled = *req.Enabled
	}
	if req.TakeProfitPercentage != nil {
		current.TakeProfitPercentage = *req.TakeProfitPercentage
	}
	if req.StopLossPercentage != nil {
		current.StopLossPercentage = *req.StopLossPercentage
	}
	if req.AutoCashoutEnabled != nil {
		current.AutoCashoutEnabled = *req.AutoCashoutEnabled
	}
	if req.CashoutPercentage != nil {
		current.CashoutPercentage = *req.CashoutPercentage
	}
	if req.MinProfitToCashout != nil {
		current.MinProfitToCashout = *req.MinProfitToCashout
	}
	if req.MaxPositionSize != nil {
		current.MaxPositionSize = *req.MaxPositionSize
	}
	if req.TradingPairs != nil {
		current.TradingPairsRaw = strings.Join(req.TradingPairs, ",")
	}

	updated, err := h.autoTradeService.UpdateSettings(current)
	if err != nil {
		respondServiceError(w, err, "Failed to update settings")
		return
	}
	respondJSON(w, http.StatusOK, settingsResponse{
		AutoTradeSettings: updated,
		TradingPairs:      updated.TradingPairs(),
	})
}

// Stats returns auto-trading statistics derived from the trade log.
func (h *AutoTradeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.autoTradeService.GetStats(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ConnectExchange stores and verifies exchange API credentials.
func (h *AutoTradeHandler) ConnectExchange(w http.ResponseWriter, r *http.Request) {
	var req request.ConnectExchangeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateConnectExchange(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	credential, verified, err := h.autoTradeService.ConnectExchange(
		requestUserID(r), req.ExchangeID, req.APIKey, req.APISecret)
	if err != nil {
		respondServiceError(w, err, "Failed to connect exchange")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"credential": credential,
		"verified":   verified,
	})
}

// Credentials lists the acting user's stored exchange credentials.
func (h *AutoTradeHandler) Credentials(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.autoTradeService.GetCredentials(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve credentials")
		return
	}
	respondJSON(w, http.StatusOK, credentials)
}

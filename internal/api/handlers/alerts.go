package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// AlertHandler handles price-alert HTTP requests
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// Alerts returns the acting user's alerts.
func (h *AlertHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertService.GetAlerts(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve alerts")
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}

// CreateAlert creates an alert from the request payload.
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateCreateAlert(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	alert := model.Alert{
		UserID:      requestUserID(r),
		CoinID:      req.CoinID,
		TargetPrice: req.TargetPrice,
		Condition:   req.Condition,
	}
	created, err := h.alertService.CreateAlert(alert)
	if err != nil {
		respondServiceError(w, err, "Failed to create alert")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// CheckAlerts evaluates the acting user's alerts against live prices.
func (h *AlertHandler) CheckAlerts(w http.ResponseWriter, r *http.Request) {
	triggered, err := h.alertService.CheckAlerts(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to check alerts")
		return
	}
	respondJSON(w, http.StatusOK, triggered)
}

// DeleteAlert removes an alert owned by the acting user.
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	if err := h.alertService.DeleteAlert(requestUserID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err, "Failed to delete alert")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

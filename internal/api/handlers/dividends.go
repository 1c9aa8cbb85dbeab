package handlers

import (
	"net/http"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// DividendHandler handles dividend-related HTTP requests
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// Dividends returns the acting user's dividend summary.
func (h *DividendHandler) Dividends(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dividendService.GetSummary(requestUserID(r), time.Now().UTC())
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve dividends")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// CreateDividend records a dividend from the request payload.
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDividendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateCreateDividend(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)
	dividend := model.Dividend{
		UserID:      requestUserID(r),
		AssetName:   req.AssetName,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
	}
	created, err := h.dividendService.CreateDividend(dividend, time.Now().UTC())
	if err != nil {
		respondServiceError(w, err, "Failed to create dividend")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

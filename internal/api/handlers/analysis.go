package handlers

import (
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// AnalysisHandler serves portfolio analytics.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analysis returns the acting user's allocation breakdown and
// diversification report.
func (h *AnalysisHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analysisService.Analyze(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to analyze portfolio")
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

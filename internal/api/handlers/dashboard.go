package handlers

import (
	"net/http"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// DashboardHandler serves the main portfolio view.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// DashboardResponse is the dashboard payload: the current valuation plus the
// recent history series.
type DashboardResponse struct {
	Valuation model.PortfolioValuation `json:"valuation"`
	History   []model.SnapshotPoint    `json:"history"`
}

// Dashboard values the acting user's portfolio and returns it with the
// snapshot history, recording today's total as a side effect.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	valuation, history, err := h.dashboardService.GetDashboard(requestUserID(r), time.Now())
	if err != nil {
		respondServiceError(w, err, "Failed to build dashboard")
		return
	}

	respondJSON(w, http.StatusOK, DashboardResponse{
		Valuation: valuation,
		History:   history,
	})
}

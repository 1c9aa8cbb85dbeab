package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// SimulationHandler handles paper-position HTTP requests
type SimulationHandler struct {
	simulationService *service.SimulationService
}

// NewSimulationHandler creates a new SimulationHandler
func NewSimulationHandler(simulationService *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
	}
}

// Simulations returns the acting user's paper positions.
func (h *SimulationHandler) Simulations(w http.ResponseWriter, r *http.Request) {
	simulations, err := h.simulationService.GetSimulations(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve simulations")
		return
	}
	respondJSON(w, http.StatusOK, simulations)
}

// CreateSimulation opens a paper position from the request payload.
func (h *SimulationHandler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSimulationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateCreateSimulation(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	sim := model.Simulation{
		UserID:     requestUserID(r),
		Name:       req.Name,
		Symbol:     req.Symbol,
		AssetType:  req.AssetType,
		Investment: req.Investment,
	}
	created, err := h.simulationService.CreateSimulation(sim, req.EntryPrice)
	if err != nil {
		respondServiceError(w, err, "Failed to create simulation")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// RefreshSimulation revalues a paper position against the live price.
func (h *SimulationHandler) RefreshSimulation(w http.ResponseWriter, r *http.Request) {
	refreshed, err := h.simulationService.RefreshSimulation(requestUserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, err, "Failed to refresh simulation")
		return
	}
	respondJSON(w, http.StatusOK, refreshed)
}

// DeleteSimulation removes a paper position owned by the acting user.
func (h *SimulationHandler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	if err := h.simulationService.DeleteSimulation(requestUserID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err, "Failed to delete simulation")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

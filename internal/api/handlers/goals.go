package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/service"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals returns the acting user's goals.
func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GetGoals(requestUserID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve goals")
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// CreateGoal creates a goal from the request payload.
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateCreateGoal(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	goal := model.Goal{
		UserID:        requestUserID(r),
		Title:         req.Title,
		Category:      req.Category,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Description:   req.Description,
	}
	created, err := h.goalService.CreateGoal(goal)
	if err != nil {
		respondServiceError(w, err, "Failed to create goal")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateGoal applies a partial update to a goal owned by the acting user.
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if err := validation.ValidateUpdateGoal(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	userID := requestUserID(r)
	goals, err := h.goalService.GetGoals(userID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve goals")
		return
	}

	goalID := chi.URLParam(r, "uuid")
	var current *model.Goal
	for i := range goals {
		if goals[i].ID == goalID {
			current = &goals[i]
			break
		}
	}
	if current == nil {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "goal not found"})
		return
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.TargetAmount != nil {
		current.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		current.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		current.Deadline = *req.Deadline
	}
	if req.Description != nil {
		current.Description = *req.Description
	}

	updated, err := h.goalService.UpdateGoal(*current)
	if err != nil {
		respondServiceError(w, err, "Failed to update goal")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteGoal removes a goal owned by the acting user.
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.goalService.DeleteGoal(requestUserID(r), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, err, "Failed to delete goal")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

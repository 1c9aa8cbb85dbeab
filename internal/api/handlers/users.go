package handlers

import (
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/api/middleware"
	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// UserHandler exposes the acting user's profile.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Profile returns the acting user as resolved by the user-context middleware.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, middleware.UserFromContext(r.Context()))
}

type updateLanguageRequest struct {
	Language string `json:"language"`
}

// UpdateLanguage changes the acting user's preferred language.
func (h *UserHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req updateLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON payload"})
		return
	}
	if req.Language == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "language is required"})
		return
	}

	if err := h.userService.UpdateLanguage(requestUserID(r), req.Language); err != nil {
		respondServiceError(w, err, "Failed to update language")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

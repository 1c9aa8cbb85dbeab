package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/api/middleware"
	"github.com/ljacquet/patrimoine-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service errors to HTTP responses: known sentinels
// become 404/400/409, validation errors become 400 with field details, and
// anything else is a 500 with the given message.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrGoalNotFound),
		errors.Is(err, apperrors.ErrAlertNotFound),
		errors.Is(err, apperrors.ErrSimulationNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound),
		errors.Is(err, apperrors.ErrCredentialNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptyID),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrMissingCredentials),
		errors.Is(err, apperrors.ErrInvalidCSVHeaders),
		errors.Is(err, apperrors.ErrNoValidRecords),
		errors.Is(err, apperrors.ErrMissingRequiredField):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		status = http.StatusConflict
	}

	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}

// decodeJSON decodes a request body into dst, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// requestUserID returns the acting user's ID resolved by the user-context
// middleware.
func requestUserID(r *http.Request) string {
	return middleware.UserFromContext(r.Context()).ID
}

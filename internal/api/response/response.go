// Package response holds the JSON response helpers shared by middleware that
// has to reply before a handler runs.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body every endpoint returns: a short message
// plus an optional detail string with the underlying cause.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status. A nil data
// writes the status line only.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// RespondError writes a structured error body. Detail may be empty when the
// message alone says enough.
func RespondError(w http.ResponseWriter, status int, message, detail string) {
	RespondJSON(w, status, ErrorResponse{
		Error:  message,
		Detail: detail,
	})
}

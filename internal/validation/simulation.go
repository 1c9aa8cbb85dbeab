package validation

import (
	"strings"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
)

// ValidateCreateSimulation validates a simulation creation request.
func ValidateCreateSimulation(req request.CreateSimulationRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Investment <= 0 {
		errors["investment"] = "investment must be positive"
	}
	if req.EntryPrice <= 0 {
		errors["entryPrice"] = "entryPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

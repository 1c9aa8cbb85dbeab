package validation

import (
	"fmt"
	"strings"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// ValidAlertCondition contains the allowed alert condition values.
var ValidAlertCondition = map[string]bool{
	model.AlertConditionAbove: true,
	model.AlertConditionBelow: true,
}

// ValidateCreateAlert validates an alert creation request.
func ValidateCreateAlert(req request.CreateAlertRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.CoinID) == "" {
		errors["coinId"] = "coinId is required"
	}
	if req.TargetPrice <= 0 {
		errors["targetPrice"] = "targetPrice must be positive"
	}
	if !ValidAlertCondition[req.Condition] {
		errors["condition"] = fmt.Sprintf("invalid condition: %s", req.Condition)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

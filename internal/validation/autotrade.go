package validation

import (
	"strings"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
)

// ValidateUpdateAutoTradeSettings validates an auto-trade settings update.
// Percentages must stay within (0, 100]; amounts must be non-negative.
func ValidateUpdateAutoTradeSettings(req request.UpdateAutoTradeSettingsRequest) error {
	errors := make(map[string]string)

	checkPct := func(field string, value *float64) {
		if value != nil && (*value <= 0 || *value > 100) {
			errors[field] = field + " must be between 0 and 100"
		}
	}
	checkPct("takeProfitPercentage", req.TakeProfitPercentage)
	checkPct("stopLossPercentage", req.StopLossPercentage)
	checkPct("cashoutPercentage", req.CashoutPercentage)

	if req.MinProfitToCashout != nil && *req.MinProfitToCashout < 0 {
		errors["minProfitToCashout"] = "minProfitToCashout cannot be negative"
	}
	if req.MaxPositionSize != nil && *req.MaxPositionSize < 0 {
		errors["maxPositionSize"] = "maxPositionSize cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateConnectExchange validates an exchange connect request.
func ValidateConnectExchange(req request.ConnectExchangeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.ExchangeID) == "" {
		errors["exchangeId"] = "exchangeId is required"
	}
	if strings.TrimSpace(req.APIKey) == "" {
		errors["apiKey"] = "apiKey is required"
	}
	if strings.TrimSpace(req.APISecret) == "" {
		errors["apiSecret"] = "apiSecret is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

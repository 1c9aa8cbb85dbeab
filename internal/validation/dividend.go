package validation

import (
	"strings"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
)

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - assetName: non-empty
//   - amount: positive
//   - paymentDate: YYYY-MM-DD format
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.AssetName) == "" {
		errors["assetName"] = "assetName is required"
	}
	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if strings.TrimSpace(req.PaymentDate) == "" {
		errors["paymentDate"] = "paymentDate is required"
	} else if _, err := time.Parse("2006-01-02", req.PaymentDate); err != nil {
		errors["paymentDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

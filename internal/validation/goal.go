package validation

import (
	"strings"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
)

// ValidateCreateGoal validates a goal creation request.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Title) == "" {
		errors["title"] = "title is required"
	}
	if req.TargetAmount <= 0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}
	if req.CurrentAmount < 0 {
		errors["currentAmount"] = "currentAmount cannot be negative"
	}
	if req.Deadline != "" {
		if _, err := time.Parse("2006-01-02", req.Deadline); err != nil {
			errors["deadline"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateGoal validates a goal update request. All fields are
// optional, but if provided they must meet the same constraints as create.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errors["title"] = "title cannot be empty"
	}
	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}
	if req.CurrentAmount != nil && *req.CurrentAmount < 0 {
		errors["currentAmount"] = "currentAmount cannot be negative"
	}
	if req.Deadline != nil && *req.Deadline != "" {
		if _, err := time.Parse("2006-01-02", *req.Deadline); err != nil {
			errors["deadline"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

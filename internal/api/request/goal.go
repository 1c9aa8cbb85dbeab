package request

// CreateGoalRequest is the payload for creating a goal.
type CreateGoalRequest struct {
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// UpdateGoalRequest is the payload for updating a goal. Omitted fields keep
// their current values.
type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty"`
	Category      *string  `json:"category,omitempty"`
	TargetAmount  *float64 `json:"targetAmount,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

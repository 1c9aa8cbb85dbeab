package model

// Goal statuses. A goal flips to completed when its current amount reaches
// the target on save.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// Goal represents a savings or investment objective.
type Goal struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
	Description   string  `json:"description,omitempty"`
	Status        string  `json:"status"`
}

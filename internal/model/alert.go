package model

import "time"

// Alert conditions.
const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// Alert represents a price alert on a lookup key.
type Alert struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CoinID      string    `json:"coinId"`
	TargetPrice float64   `json:"targetPrice"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"createdAt"`
}

package model

import "time"

// Simulation represents a paper position: an investment at an entry price,
// revalued on demand against the live price.
type Simulation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	AssetType    string    `json:"assetType"`
	Investment   float64   `json:"investment"`
	Quantity     float64   `json:"quantity"`
	CurrentPrice float64   `json:"currentPrice"`
	CurrentValue float64   `json:"currentValue"`
	ProfitLoss   float64   `json:"profitLoss"`
	CreatedAt    time.Time `json:"createdAt"`
}

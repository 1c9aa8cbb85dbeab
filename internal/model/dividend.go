package model

import "time"

// Dividend statuses, derived from the payment date relative to now.
const (
	DividendStatusReceived = "received"
	DividendStatusUpcoming = "upcoming"
)

// Dividend represents a dividend payment tied to an asset name.
type Dividend struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	AssetName   string    `json:"assetName"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
	Status      string    `json:"status"`
}

// DividendSummary aggregates a user's dividends split on payment date.
type DividendSummary struct {
	Dividends     []Dividend `json:"dividends"`
	TotalUpcoming float64    `json:"totalUpcoming"`
	TotalReceived float64    `json:"totalReceived"`
}

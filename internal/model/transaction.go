package model

import "time"

// Transaction types recorded by the asset lifecycle and the auto-trader.
const (
	TransactionTypeBuy     = "buy"
	TransactionTypeSell    = "sell"
	TransactionTypeCashout = "auto_cashout"
)

// StrategyAutoTrade marks transactions originated by the auto-trading engine
// rather than manual asset management.
const StrategyAutoTrade = "auto_trade"

// Transaction is one append-only entry in a user's trade log.
// Price is the per-unit price at which the event was recorded; for sales
// triggered by asset deletion this is the live price resolved at that moment.
type Transaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Symbol     string    `json:"symbol"`
	Type       string    `json:"type"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	Date       time.Time `json:"date"`
	AssetName  string    `json:"assetName,omitempty"`
	AssetType  string    `json:"assetType,omitempty"`
	Strategy   string    `json:"strategy,omitempty"`
	ProfitLoss float64   `json:"profitLoss"`
}

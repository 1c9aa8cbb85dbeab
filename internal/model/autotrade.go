package model

import (
	"strings"
	"time"
)

// AutoTradeSettings holds a user's simplified auto-trading configuration.
// One row per user, created with defaults on first read.
type AutoTradeSettings struct {
	ID                   string  `json:"id"`
	UserID               string  `json:"userId"`
	Enabled              bool    `json:"enabled"`
	TakeProfitPercentage float64 `json:"takeProfitPercentage"`
	StopLossPercentage   float64 `json:"stopLossPercentage"`
	AutoCashoutEnabled   bool    `json:"autoCashoutEnabled"`
	CashoutPercentage    float64 `json:"cashoutPercentage"`
	MinProfitToCashout   float64 `json:"minProfitToCashout"`
	MaxPositionSize      float64 `json:"maxPositionSize"`
	TradingPairsRaw      string  `json:"-"`
}

// TradingPairs returns the configured pairs, stored comma-separated.
func (s AutoTradeSettings) TradingPairs() []string {
	if s.TradingPairsRaw == "" {
		return []string{}
	}
	return strings.Split(s.TradingPairsRaw, ",")
}

// AutoTradeStats aggregates auto-trade transactions for the stats endpoint.
type AutoTradeStats struct {
	TotalAutoTrades int     `json:"totalAutoTrades"`
	TotalCashouts   int     `json:"totalCashouts"`
	TotalProfit     float64 `json:"totalProfit"`
	SuccessRate     float64 `json:"successRate"`
	TotalCashedOut  float64 `json:"totalCashedOut"`
}

// ExchangeCredential stores an exchange API key pair, encrypted at rest.
// The *Enc fields hold fernet tokens; plaintext secrets never leave the
// security layer.
type ExchangeCredential struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ExchangeID   string    `json:"exchangeId"`
	APIKeyEnc    string    `json:"-"`
	APISecretEnc string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

package request

// UpdateAutoTradeSettingsRequest is the payload for saving auto-trade
// settings. Omitted fields keep their current values.
type UpdateAutoTradeSettingsRequest struct {
	Enabled              *bool    `json:"enabled,omitempty"`
	TakeProfitPercentage *float64 `json:"takeProfitPercentage,omitempty"`
	StopLossPercentage   *float64 `json:"stopLossPercentage,omitempty"`
	AutoCashoutEnabled   *bool    `json:"autoCashoutEnabled,omitempty"`
	CashoutPercentage    *float64 `json:"cashoutPercentage,omitempty"`
	MinProfitToCashout   *float64 `json:"minProfitToCashout,omitempty"`
	MaxPositionSize      *float64 `json:"maxPositionSize,omitempty"`
	TradingPairs         []string `json:"tradingPairs,omitempty"`
}

// ConnectExchangeRequest is the payload for storing exchange credentials.
type ConnectExchangeRequest struct {
	ExchangeID string `json:"exchangeId"`
	APIKey     string `json:"apiKey"`
	APISecret  string `json:"apiSecret"`
}

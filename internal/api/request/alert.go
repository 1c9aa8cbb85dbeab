package request

// CreateAlertRequest is the payload for creating a price alert.
type CreateAlertRequest struct {
	CoinID      string  `json:"coinId"`
	TargetPrice float64 `json:"targetPrice"`
	Condition   string  `json:"condition"`
}

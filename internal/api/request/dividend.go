package request

// CreateDividendRequest is the payload for recording a dividend.
type CreateDividendRequest struct {
	AssetName   string  `json:"assetName"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
}

package request

// CreateAssetRequest is the payload for creating an asset.
type CreateAssetRequest struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	AssetType    string  `json:"assetType"`
	Quantity     float64 `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	CoinID       string  `json:"coinId,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Location     string  `json:"location,omitempty"`
	Broker       string  `json:"broker,omitempty"`
	Currency     string  `json:"currency,omitempty"`
}

// UpdateAssetRequest is the payload for updating an asset. Omitted fields
// keep their current values.
type UpdateAssetRequest struct {
	Name         *string  `json:"name,omitempty"`
	Symbol       *string  `json:"symbol,omitempty"`
	AssetType    *string  `json:"assetType,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	BuyPrice     *float64 `json:"buyPrice,omitempty"`
	CoinID       *string  `json:"coinId,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Broker       *string  `json:"broker,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
}

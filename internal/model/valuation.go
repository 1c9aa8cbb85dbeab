package model

// ValuationLine is the derived, non-persisted valuation of a single asset.
// CurrentPrice is either a live quote or the purchase-price fallback.
// ProfitLossPercent is 0 when the cost basis is 0.
type ValuationLine struct {
	AssetID           string  `json:"assetId"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	AssetType         string  `json:"assetType"`
	Quantity          float64 `json:"quantity"`
	BuyPrice          float64 `json:"buyPrice"`
	CurrentPrice      float64 `json:"currentPrice"`
	LivePrice         bool    `json:"livePrice"`
	Value             float64 `json:"value"`
	CostBasis         float64 `json:"costBasis"`
	ProfitLoss        float64 `json:"profitLoss"`
	ProfitLossPercent float64 `json:"profitLossPercent"`
}

// PortfolioValuation aggregates a user's valuation lines.
// TotalValue is always the sum of line values, TotalCost the sum of line
// cost bases.
type PortfolioValuation struct {
	Lines             []ValuationLine `json:"lines"`
	TotalValue        float64         `json:"totalValue"`
	TotalCost         float64         `json:"totalCost"`
	ProfitLoss        float64         `json:"profitLoss"`
	ProfitLossPercent float64         `json:"profitLossPercent"`
}

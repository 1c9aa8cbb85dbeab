package request

// CreateSimulationRequest is the payload for opening a paper position.
type CreateSimulationRequest struct {
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	AssetType  string  `json:"assetType"`
	Investment float64 `json:"investment"`
	EntryPrice float64 `json:"entryPrice"`
}

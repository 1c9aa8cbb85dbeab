package model

import "time"

// Asset class enumeration. Stored as-is in the asset_type column.
const (
	AssetTypeCrypto     = "crypto"
	AssetTypeStock      = "stock"
	AssetTypeRealEstate = "real-estate"
	AssetTypeCommodity  = "commodity"
	AssetTypeOther      = "other"
)

// AssetTypes lists all asset classes in display order.
var AssetTypes = []string{
	AssetTypeCrypto,
	AssetTypeStock,
	AssetTypeRealEstate,
	AssetTypeCommodity,
	AssetTypeOther,
}

// Asset represents a holding owned by a user.
// Quantity and BuyPrice are each >= 0; cost basis = Quantity * BuyPrice.
// CoinID is the optional external price-lookup key (empty when the asset has
// no live price source and is always valued at its purchase price).
type Asset struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	AssetType    string    `json:"assetType"`
	Quantity     float64   `json:"quantity"`
	BuyPrice     float64   `json:"buyPrice"`
	CoinID       string    `json:"coinId,omitempty"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Notes        string    `json:"notes,omitempty"`
	Location     string    `json:"location,omitempty"`
	Broker       string    `json:"broker,omitempty"`
	Currency     string    `json:"currency"`
}

// CostBasis returns quantity * purchase price.
func (a Asset) CostBasis() float64 {
	return a.Quantity * a.BuyPrice
}

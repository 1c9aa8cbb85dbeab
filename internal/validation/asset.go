package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/api/request"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// ValidAssetType contains the allowed asset class values.
var ValidAssetType = map[string]bool{
	model.AssetTypeCrypto:     true,
	model.AssetTypeStock:      true,
	model.AssetTypeRealEstate: true,
	model.AssetTypeCommodity:  true,
	model.AssetTypeOther:      true,
}

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: non-empty
//   - symbol: non-empty
//   - assetType: one of the known asset classes
//   - quantity: >= 0
//   - buyPrice: >= 0
//
// purchaseDate, when present, must be in YYYY-MM-DD format.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if strings.TrimSpace(req.AssetType) == "" {
		errors["assetType"] = "assetType is required"
	} else if !ValidAssetType[req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", req.AssetType)
	}
	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.BuyPrice < 0 {
		errors["buyPrice"] = "buyPrice cannot be negative"
	}
	if req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAsset validates an asset update request. All fields are
// optional, but if provided they must meet the same constraints as create.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}
	if req.AssetType != nil && !ValidAssetType[*req.AssetType] {
		errors["assetType"] = fmt.Sprintf("invalid asset type: %s", *req.AssetType)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.BuyPrice != nil && *req.BuyPrice < 0 {
		errors["buyPrice"] = "buyPrice cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

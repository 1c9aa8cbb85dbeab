package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/coingecko"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// AssetService manages the asset lifecycle and keeps the transaction log in
// step with it: creating an asset records a buy, deleting one records a sell
// at the live price resolved at deletion time.
type AssetService struct {
	assetRepo       *repository.AssetRepository
	transactionRepo *repository.TransactionRepository
	gecko           coingecko.Client
}

// NewAssetService creates a new AssetService with the provided dependencies.
func NewAssetService(
	assetRepo *repository.AssetRepository,
	transactionRepo *repository.TransactionRepository,
	gecko coingecko.Client,
) *AssetService {
	return &AssetService{
		assetRepo:       assetRepo,
		transactionRepo: transactionRepo,
		gecko:           gecko,
	}
}

// GetAssets returns all assets for a user ordered by purchase date.
func (s *AssetService) GetAssets(userID string) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(userID)
}

// GetAsset returns a single asset owned by the user.
func (s *AssetService) GetAsset(userID, assetID string) (model.Asset, error) {
	return s.assetRepo.GetAssetOnID(userID, assetID)
}

// CreateAsset persists a new asset and appends the matching buy transaction.
// Crypto assets without an explicit lookup key get one resolved from their
// symbol; resolution failure leaves the key empty and the asset valued at its
// purchase price.
func (s *AssetService) CreateAsset(asset model.Asset) (model.Asset, error) {
	asset.ID = uuid.New().String()
	asset.Symbol = strings.ToUpper(asset.Symbol)
	if asset.PurchaseDate.IsZero() {
		asset.PurchaseDate = time.Now().UTC()
	}
	if asset.Currency == "" {
		asset.Currency = "EUR"
	}

	if asset.AssetType == model.AssetTypeCrypto && asset.CoinID == "" {
		if coinID, err := s.gecko.SearchCoin(asset.Symbol); err == nil {
			asset.CoinID = coinID
		}
	}

	if err := s.assetRepo.InsertAsset(asset); err != nil {
		return model.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}

	buy := model.Transaction{
		ID:        uuid.New().String(),
		UserID:    asset.UserID,
		Symbol:    asset.Symbol,
		Type:      model.TransactionTypeBuy,
		Quantity:  asset.Quantity,
		Price:     asset.BuyPrice,
		Date:      time.Now().UTC(),
		AssetName: asset.Name,
		AssetType: asset.AssetType,
	}
	if err := s.transactionRepo.InsertTransaction(buy); err != nil {
		return model.Asset{}, fmt.Errorf("failed to record buy transaction: %w", err)
	}

	return asset, nil
}

// UpdateAsset updates an existing asset's mutable fields.
func (s *AssetService) UpdateAsset(asset model.Asset) (model.Asset, error) {
	current, err := s.assetRepo.GetAssetOnID(asset.UserID, asset.ID)
	if err != nil {
		return model.Asset{}, err
	}

	asset.Symbol = strings.ToUpper(asset.Symbol)
	if asset.CoinID == "" {
		asset.CoinID = current.CoinID
	}
	if asset.PurchaseDate.IsZero() {
		asset.PurchaseDate = current.PurchaseDate
	}
	if asset.Currency == "" {
		asset.Currency = current.Currency
	}

	if err := s.assetRepo.UpdateAsset(asset); err != nil {
		return model.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

// DeleteAsset removes an asset and records the disposal as a sell transaction
// priced at the live quote resolved now, falling back to the purchase price
// when no quote is available. The transaction carries the realized difference
// against the asset's cost basis.
func (s *AssetService) DeleteAsset(userID, assetID string) error {
	asset, err := s.assetRepo.GetAssetOnID(userID, assetID)
	if err != nil {
		return err
	}

	salePrice := asset.BuyPrice
	if asset.CoinID != "" {
		if quote, ok := s.gecko.GetPrice(asset.CoinID); ok {
			salePrice = quote
		}
	}

	if err := s.assetRepo.DeleteAsset(userID, assetID); err != nil {
		return err
	}

	sell := model.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		Symbol:     asset.Symbol,
		Type:       model.TransactionTypeSell,
		Quantity:   asset.Quantity,
		Price:      salePrice,
		Date:       time.Now().UTC(),
		AssetName:  asset.Name,
		AssetType:  asset.AssetType,
		ProfitLoss: asset.Quantity*salePrice - asset.CostBasis(),
	}
	if err := s.transactionRepo.InsertTransaction(sell); err != nil {
		return fmt.Errorf("failed to record sell transaction: %w", err)
	}
	return nil
}

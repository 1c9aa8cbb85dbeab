package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
	"github.com/ljacquet/patrimoine-backend/internal/security"
)

// Default auto-trade settings applied when a user reads their configuration
// for the first time.
const (
	defaultTakeProfitPct   = 5.0
	defaultStopLossPct     = 3.0
	defaultCashoutPct      = 50.0
	defaultMinProfitCash   = 100.0
	defaultMaxPositionSize = 1000.0
)

// AutoTradeService manages auto-trading settings, exchange credentials and
// the derived trading statistics. Exchange secrets are fernet-encrypted
// before they reach the repository and only decrypted to verify a connection.
type AutoTradeService struct {
	autoTradeRepo   *repository.AutoTradeRepository
	transactionRepo *repository.TransactionRepository
	vault           *security.Vault
}

// NewAutoTradeService creates a new AutoTradeService.
func NewAutoTradeService(
	autoTradeRepo *repository.AutoTradeRepository,
	transactionRepo *repository.TransactionRepository,
	vault *security.Vault,
) *AutoTradeService {
	return &AutoTradeService{
		autoTradeRepo:   autoTradeRepo,
		transactionRepo: transactionRepo,
		vault:           vault,
	}
}

// GetSettings returns the user's auto-trade settings, creating the row with
// defaults on first read.
func (s *AutoTradeService) GetSettings(userID string) (model.AutoTradeSettings, error) {
	settings, found, err := s.autoTradeRepo.GetSettings(userID)
	if err != nil {
		return model.AutoTradeSettings{}, err
	}
	if found {
		return settings, nil
	}

	settings = model.AutoTradeSettings{
		ID:                   uuid.New().String(),
		UserID:               userID,
		Enabled:              false,
		TakeProfitPercentage: defaultTakeProfitPct,
		StopLossPercentage:   defaultStopLossPct,
		AutoCashoutEnabled:   false,
		CashoutPercentage:    defaultCashoutPct,
		MinProfitToCashout:   defaultMinProfitCash,
		MaxPositionSize:      defaultMaxPositionSize,
	}
	err = s.autoTradeRepo.InsertSettings(settings)
	if errors.Is(err, apperrors.ErrDuplicateEntry) {
		// Concurrent first read created the row; return what it wrote.
		settings, _, err = s.autoTradeRepo.GetSettings(userID)
		return settings, err
	}
	if err != nil {
		return model.AutoTradeSettings{}, fmt.Errorf("failed to create default settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings overwrites the user's auto-trade settings, creating the row
// first if it does not exist yet.
func (s *AutoTradeService) UpdateSettings(settings model.AutoTradeSettings) (model.AutoTradeSettings, error) {
	current, err := s.GetSettings(settings.UserID)
	if err != nil {
		return model.AutoTradeSettings{}, err
	}

	settings.ID = current.ID
	if err := s.autoTradeRepo.UpdateSettings(settings); err != nil {
		return model.AutoTradeSettings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

// GetStats derives trading statistics from the auto-trade entries in the
// transaction log.
func (s *AutoTradeService) GetStats(userID string) (model.AutoTradeStats, error) {
	transactions, err := s.transactionRepo.GetTransactions(userID)
	if err != nil {
		return model.AutoTradeStats{}, err
	}

	var stats model.AutoTradeStats
	var wins int
	for _, t := range transactions {
		if t.Strategy != model.StrategyAutoTrade {
			continue
		}
		stats.TotalAutoTrades++
		stats.TotalProfit += t.ProfitLoss
		if t.ProfitLoss > 0 {
			wins++
		}
		if t.Type == model.TransactionTypeCashout {
			stats.TotalCashouts++
			stats.TotalCashedOut += t.Quantity * t.Price
		}
	}
	if stats.TotalAutoTrades > 0 {
		stats.SuccessRate = float64(wins) / float64(stats.TotalAutoTrades) * 100
	}
	return stats, nil
}

// ConnectExchange stores an encrypted credential pair for an exchange and
// verifies it. A credential that fails verification is kept but deactivated,
// and the failure is reported to the caller through the returned flag.
func (s *AutoTradeService) ConnectExchange(userID, exchangeID, apiKey, apiSecret string) (model.ExchangeCredential, bool, error) {
	if apiKey == "" || apiSecret == "" {
		return model.ExchangeCredential{}, false, apperrors.ErrMissingCredentials
	}

	keyEnc, err := s.vault.Encrypt(apiKey)
	if err != nil {
		return model.ExchangeCredential{}, false, fmt.Errorf("failed to encrypt api key: %w", err)
	}
	secretEnc, err := s.vault.Encrypt(apiSecret)
	if err != nil {
		return model.ExchangeCredential{}, false, fmt.Errorf("failed to encrypt api secret: %w", err)
	}

	credential := model.ExchangeCredential{
		ID:           uuid.New().String(),
		UserID:       userID,
		ExchangeID:   exchangeID,
		APIKeyEnc:    keyEnc,
		APISecretEnc: secretEnc,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.autoTradeRepo.InsertCredential(credential); err != nil {
		return model.ExchangeCredential{}, false, fmt.Errorf("failed to store credential: %w", err)
	}

	if !s.verifyConnection(credential) {
		if err := s.autoTradeRepo.SetCredentialActive(userID, credential.ID, false); err != nil {
			return model.ExchangeCredential{}, false, fmt.Errorf("failed to deactivate credential: %w", err)
		}
		credential.IsActive = false
		return credential, false, nil
	}
	return credential, true, nil
}

// GetCredentials returns the user's stored exchange credentials. Secrets stay
// encrypted; the model never serializes them.
func (s *AutoTradeService) GetCredentials(userID string) ([]model.ExchangeCredential, error) {
	return s.autoTradeRepo.GetCredentials(userID, false)
}

// verifyConnection checks that the stored tokens decrypt back to usable
// secrets. No exchange API is called; order placement is out of scope.
func (s *AutoTradeService) verifyConnection(credential model.ExchangeCredential) bool {
	key, err := s.vault.Decrypt(credential.APIKeyEnc)
	if err != nil || key == "" {
		return false
	}
	secret, err := s.vault.Decrypt(credential.APISecretEnc)
	return err == nil && secret != ""
}

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

// AlertService manages price alerts and evaluates them against live quotes.
type AlertService struct {
	alertRepo *repository.AlertRepository
	gecko     coingecko.Client
}

// NewAlertService creates a new AlertService.
func NewAlertService(alertRepo *repository.AlertRepository, gecko coingecko.Client) *AlertService {
	return &AlertService{alertRepo: alertRepo, gecko: gecko}
}

// TriggeredAlert pairs an alert with the live price that satisfied it.
type TriggeredAlert struct {
	Alert        model.Alert `json:"alert"`
	CurrentPrice float64     `json:"currentPrice"`
}

// GetAlerts returns all alerts for a user.
func (s *AlertService) GetAlerts(userID string) ([]model.Alert, error) {
	return s.alertRepo.GetAlerts(userID)
}

// CreateAlert persists a new alert. The lookup key may be a symbol; it is
// resolved to a coin ID when possible so later evaluation hits the price API
// directly.
func (s *AlertService) CreateAlert(alert model.Alert) (model.Alert, error) {
	alert.ID = uuid.New().String()
	alert.CoinID = strings.ToLower(alert.CoinID)
	alert.CreatedAt = time.Now().UTC()

	if _, ok := s.gecko.GetPrice(alert.CoinID); !ok {
		if coinID, err := s.gecko.SearchCoin(alert.CoinID); err == nil {
			alert.CoinID = coinID
		}
	}

	if err := s.alertRepo.InsertAlert(alert); err != nil {
		return model.Alert{}, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

// DeleteAlert removes an alert owned by the user.
func (s *AlertService) DeleteAlert(userID, alertID string) error {
	return s.alertRepo.DeleteAlert(userID, alertID)
}

// CheckAlerts evaluates all of a user's alerts against live prices and
// returns those currently satisfied. Alerts whose quote cannot be resolved
// are skipped.
func (s *AlertService) CheckAlerts(userID string) ([]TriggeredAlert, error) {
	alerts, err := s.alertRepo.GetAlerts(userID)
	if err != nil {
		return nil, err
	}

	triggered := make([]TriggeredAlert, 0)
	for _, alert := range alerts {
		price, ok := s.gecko.GetPrice(alert.CoinID)
		if !ok {
			continue
		}

		hit := (alert.Condition == model.AlertConditionAbove && price >= alert.TargetPrice) ||
			(alert.Condition == model.AlertConditionBelow && price <= alert.TargetPrice)
		if hit {
			triggered = append(triggered, TriggeredAlert{Alert: alert, CurrentPrice: price})
		}
	}
	return triggered, nil
}

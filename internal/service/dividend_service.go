package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// DividendService manages dividend records. Status is derived from the
// payment date at read time, so an upcoming dividend flips to received once
// its date passes without any write.
type DividendService struct {
	dividendRepo *repository.DividendRepository
}

// NewDividendService creates a new DividendService.
func NewDividendService(dividendRepo *repository.DividendRepository) *DividendService {
	return &DividendService{dividendRepo: dividendRepo}
}

// GetSummary returns a user's dividends with derived statuses and the
// upcoming/received totals.
func (s *DividendService) GetSummary(userID string, now time.Time) (model.DividendSummary, error) {
	dividends, err := s.dividendRepo.GetDividends(userID)
	if err != nil {
		return model.DividendSummary{}, err
	}

	summary := model.DividendSummary{Dividends: make([]model.Dividend, 0, len(dividends))}
	for _, d := range dividends {
		if d.PaymentDate.After(now) {
			d.Status = model.DividendStatusUpcoming
			summary.TotalUpcoming += d.Amount
		} else {
			d.Status = model.DividendStatusReceived
			summary.TotalReceived += d.Amount
		}
		summary.Dividends = append(summary.Dividends, d)
	}
	return summary, nil
}

// CreateDividend persists a new dividend record.
func (s *DividendService) CreateDividend(dividend model.Dividend, now time.Time) (model.Dividend, error) {
	dividend.ID = uuid.New().String()
	if dividend.PaymentDate.After(now) {
		dividend.Status = model.DividendStatusUpcoming
	} else {
		dividend.Status = model.DividendStatusReceived
	}

	if err := s.dividendRepo.InsertDividend(dividend); err != nil {
		return model.Dividend{}, fmt.Errorf("failed to create dividend: %w", err)
	}
	return dividend, nil
}

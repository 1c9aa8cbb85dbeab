package service

import (
	"log"
	"time"

	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// DashboardService assembles the main portfolio view: current valuation plus
// the recent history series, with the latter kept in sync as a side effect of
// every read.
type DashboardService struct {
	assetRepo *repository.AssetRepository
	valuation *ValuationService
	snapshots *SnapshotService
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	assetRepo *repository.AssetRepository,
	valuation *ValuationService,
	snapshots *SnapshotService,
) *DashboardService {
	return &DashboardService{
		assetRepo: assetRepo,
		valuation: valuation,
		snapshots: snapshots,
	}
}

// GetDashboard values the user's portfolio and records today's total in the
// snapshot history. History maintenance is best-effort: if the write fails
// the valuation is still returned alongside whatever series is already
// stored, so the dashboard degrades to stale history instead of erroring.
func (s *DashboardService) GetDashboard(userID string, now time.Time) (model.PortfolioValuation, []model.SnapshotPoint, error) {
	assets, err := s.assetRepo.GetAssets(userID)
	if err != nil {
		return model.PortfolioValuation{}, nil, err
	}

	valuation := s.valuation.Valuate(assets)

	if err := s.snapshots.Sync(userID, valuation.TotalValue, now); err != nil {
		log.Printf("WARN: snapshot sync failed for user %s: %v", userID, err)
	}

	history, err := s.snapshots.History(userID)
	if err != nil {
		log.Printf("WARN: snapshot history read failed for user %s: %v", userID, err)
		history = []model.SnapshotPoint{}
	}

	return valuation, history, nil
}

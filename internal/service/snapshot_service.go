package service

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

const (
	// historyDays is the number of daily points kept for charting and the
	// length of the synthetic series seeded for a first-time user.
	historyDays = 30

	// backfillSeedRatio is the fraction of the current total the synthetic
	// series starts from.
	backfillSeedRatio = 0.8

	// backfillDriftBound bounds the day-over-day multiplicative drift of the
	// synthetic series to +/-5%.
	backfillDriftBound = 0.05

	snapshotDateLayout = "2006-01-02"
	chartLabelLayout   = "02/01"
)

// SnapshotService maintains the per-user daily history of portfolio totals.
// All multi-row writes run inside a single transaction, so a history is either
// fully recorded or untouched.
type SnapshotService struct {
	db           *sql.DB
	snapshotRepo *repository.SnapshotRepository

	// rng drives the backfill drift. It is shared between request handlers
	// and the cron job, and rand.Rand is not goroutine-safe.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSnapshotService creates a new SnapshotService. rng drives the synthetic
// backfill drift; pass a seeded source for reproducible series.
func NewSnapshotService(db *sql.DB, snapshotRepo *repository.SnapshotRepository, rng *rand.Rand) *SnapshotService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SnapshotService{db: db, snapshotRepo: snapshotRepo, rng: rng}
}

// Sync records totalValue as the user's snapshot for the calendar day of now.
//
// A user with no history first receives a synthetic 30-day series ending
// today: it starts at 80% of totalValue, drifts by a bounded random factor
// each day, and the final day is forced to exactly totalValue. Otherwise the
// day's row is inserted, or updated in place when the day already has one, so
// repeated calls within a day leave exactly one row holding the latest total.
func (s *SnapshotService) Sync(userID string, totalValue float64, now time.Time) error {
	today := midnightUTC(now)

	count, err := s.snapshotRepo.CountSnapshots(userID)
	if err != nil {
		return fmt.Errorf("failed to count snapshots: %w", err)
	}

	if count == 0 {
		return s.backfill(userID, totalValue, today)
	}
	return s.upsertDay(userID, totalValue, today)
}

// backfill seeds the full synthetic series in one transaction.
func (s *SnapshotService) backfill(userID string, totalValue float64, today time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txRepo := s.snapshotRepo.WithTx(tx)

	s.rngMu.Lock()
	drifts := make([]float64, historyDays)
	for i := range drifts {
		drifts[i] = (s.rng.Float64()*2 - 1) * backfillDriftBound
	}
	s.rngMu.Unlock()

	value := totalValue * backfillSeedRatio
	for i := 0; i < historyDays; i++ {
		value *= 1 + drifts[i]
		if i == historyDays-1 {
			value = totalValue
		}

		snapshot := model.PortfolioSnapshot{
			ID:         uuid.New().String(),
			UserID:     userID,
			Date:       today.AddDate(0, 0, i-(historyDays-1)),
			TotalValue: value,
		}
		if err := txRepo.InsertSnapshot(snapshot); err != nil {
			return fmt.Errorf("failed to insert backfill snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit backfill: %w", err)
	}
	return nil
}

// upsertDay inserts the day's snapshot or refreshes its value in place.
func (s *SnapshotService) upsertDay(userID string, totalValue float64, today time.Time) error {
	date := today.Format(snapshotDateLayout)

	_, err := s.snapshotRepo.FindByDate(userID, date)
	switch {
	case err == nil:
		if err := s.snapshotRepo.UpdateSnapshotValue(userID, date, totalValue); err != nil {
			return fmt.Errorf("failed to refresh snapshot: %w", err)
		}
		return nil
	case errors.Is(err, apperrors.ErrSnapshotNotFound):
		snapshot := model.PortfolioSnapshot{
			ID:         uuid.New().String(),
			UserID:     userID,
			Date:       today,
			TotalValue: totalValue,
		}
		err := s.snapshotRepo.InsertSnapshot(snapshot)
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			// Lost an insert race for the day; the row exists now, refresh it.
			return s.snapshotRepo.UpdateSnapshotValue(userID, date, totalValue)
		}
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up snapshot: %w", err)
	}
}

// History returns up to the most recent 30 daily points in ascending date
// order, formatted for charting.
func (s *SnapshotService) History(userID string) ([]model.SnapshotPoint, error) {
	snapshots, err := s.snapshotRepo.ListRecent(userID, historyDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	points := make([]model.SnapshotPoint, 0, len(snapshots))
	for _, snap := range snapshots {
		points = append(points, model.SnapshotPoint{
			Label: snap.Date.Format(chartLabelLayout),
			Value: snap.TotalValue,
		})
	}
	return points, nil
}

// midnightUTC truncates t to its calendar day in UTC.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

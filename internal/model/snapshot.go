package model

import "time"

// PortfolioSnapshot is one persisted (user, calendar day, total value) record
// used for historical charting. At most one row exists per user per day,
// enforced by a uniqueness constraint on (user_id, date).
type PortfolioSnapshot struct {
	ID         string    // Primary key
	UserID     string    // Owning user
	Date       time.Time // Calendar day, midnight UTC
	TotalValue float64   // Total portfolio value on that day
}

// SnapshotPoint is one charting point derived from a snapshot.
// Label is the snapshot date formatted as DD/MM.
type SnapshotPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

package service

import (
	"database/sql"

	"github.com/ljacquet/patrimoine-backend/internal/database"
	"github.com/ljacquet/patrimoine-backend/internal/version"
)

// SystemService answers health and version probes.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth pings the database.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the build version.
func (s *SystemService) CheckVersion() string {
	return version.Version
}

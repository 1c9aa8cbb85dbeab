// Package scheduler runs the recurring background jobs, currently the daily
// portfolio snapshot capture.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ljacquet/patrimoine-backend/internal/service"
)

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron      *cron.Cron
	users     *service.UserService
	dashboard *service.DashboardService
}

// New creates a Scheduler with the daily snapshot job registered on the given
// cron expression.
func New(schedule string, users *service.UserService, dashboard *service.DashboardService) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		users:     users,
		dashboard: dashboard,
	}
	if _, err := s.cron.AddFunc(schedule, s.captureSnapshots); err != nil {
		return nil, fmt.Errorf("failed to register snapshot job: %w", err)
	}
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the runner and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// captureSnapshots records a snapshot for every user so charts stay current
// even for users who do not open the dashboard that day. GetDashboard values
// the portfolio and syncs the day's row as a side effect.
func (s *Scheduler) captureSnapshots() {
	users, err := s.users.GetAllUsers()
	if err != nil {
		log.Printf("ERROR: snapshot job could not list users: %v", err)
		return
	}

	now := time.Now().UTC()
	for _, user := range users {
		if _, _, err := s.dashboard.GetDashboard(user.ID, now); err != nil {
			log.Printf("ERROR: snapshot job failed for user %s: %v", user.ID, err)
		}
	}
	log.Printf("INFO: snapshot job completed for %d users", len(users))
}

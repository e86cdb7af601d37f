package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/metrics"
)

const sweepTimeout = time.Minute

type expiredSessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// sessionSweeper periodically purges expired sessions. Redis expires keys
// natively, so the sweeper is idle for that backend.
type sessionSweeper struct {
	cron    *cron.Cron
	cleaner expiredSessionCleaner
	log     *slog.Logger
}

func newSessionSweeper(cfg config.SessionConfig, cleaner expiredSessionCleaner, logger *slog.Logger) (*sessionSweeper, error) {
	s := &sessionSweeper{
		cron:    cron.New(),
		cleaner: cleaner,
		log:     logger.With("component", "session_sweeper"),
	}

	if cfg.Backend != "postgres" {
		return s, nil
	}

	if _, err := s.cron.AddFunc(cfg.CleanupSchedule, s.sweep); err != nil {
		return nil, fmt.Errorf("schedule session cleanup %q: %w", cfg.CleanupSchedule, err)
	}
	s.log.Info("session cleanup scheduled", slog.String("schedule", cfg.CleanupSchedule))
	return s, nil
}

func (s *sessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.cleaner.CleanupExpiredSessions(ctx)
	if err != nil {
		// Already logged by the auth service.
		return
	}
	metrics.RecordSessionsSwept(n)
}

// Start runs the schedule in the background.
func (s *sessionSweeper) Start() { s.cron.Start() }

// Stop halts the schedule and waits for a running sweep to finish.
func (s *sessionSweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Entries reports how many jobs are scheduled.
func (s *sessionSweeper) Entries() int { return len(s.cron.Entries()) }

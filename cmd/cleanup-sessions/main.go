// Command cleanup-sessions sweeps expired Postgres sessions once, for
// deployments that turn off the in-process schedule or prefer system cron.
// Redis sessions expire on their own, so the command exits early for them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WillSanton/WebSite/internal/adapter/postgres"
	pgsession "github.com/WillSanton/WebSite/internal/adapter/postgres/session"
	"github.com/WillSanton/WebSite/internal/app"
	"github.com/WillSanton/WebSite/internal/config"
)

const sweepTimeout = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("cleanup-sessions", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log).With("command", "cleanup-sessions")

	if cfg.Session.Backend != "postgres" {
		logger.Info("nothing to sweep", slog.String("backend", cfg.Session.Backend))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	start := time.Now()
	deleted, err := pgsession.New(pool).DeleteExpired(ctx, start)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}

	logger.Info("expired sessions swept",
		slog.Int64("deleted", deleted),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/WillSanton/WebSite/internal/adapter/objectstore"
	paymentgw "github.com/WillSanton/WebSite/internal/adapter/payment"
	"github.com/WillSanton/WebSite/internal/adapter/postgres"
	assistantrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/assistant"
	commentrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/comment"
	postrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/post"
	pgsession "github.com/WillSanton/WebSite/internal/adapter/postgres/session"
	userrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/user"
	redissession "github.com/WillSanton/WebSite/internal/adapter/redis/session"
	authcookie "github.com/WillSanton/WebSite/internal/auth"
	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/assistant"
	"github.com/WillSanton/WebSite/internal/service/auth"
	"github.com/WillSanton/WebSite/internal/service/blog"
	"github.com/WillSanton/WebSite/internal/service/export"
	"github.com/WillSanton/WebSite/internal/service/payment"
	"github.com/WillSanton/WebSite/internal/transport/middleware"
	"github.com/WillSanton/WebSite/internal/transport/rest"
)

// sessionStore is satisfied by both session backends.
type sessionStore interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("session_backend", cfg.Session.Backend),
		slog.Bool("payments", cfg.Payment.Enabled()),
		slog.Bool("export_mirror", cfg.Storage.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateDSN(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	users := userrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	assistants := assistantrepo.New(pool)

	components := map[string]rest.Pinger{"database": pool}

	var sessions sessionStore
	switch cfg.Session.Backend {
	case "redis":
		client, err := redissession.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = redissession.New(client)
		components["sessions"] = rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	default:
		sessions = pgsession.New(pool)
	}

	signer := authcookie.NewCookieSigner(cfg.Auth.SessionSecret, cfg.Auth.Issuer)
	authSvc := auth.NewService(logger, users, sessions, signer, cfg.Auth, cfg.Session)
	blogSvc := blog.NewService(logger, posts, comments, users)
	assistantSvc := assistant.NewService(logger, assistants)
	paymentSvc := payment.NewService(logger,
		paymentgw.NewStripeGateway(cfg.Payment.SecretKey, nil),
		assistantSvc,
		cfg.Payment,
	)

	health := rest.NewHealthHandler(BuildVersion(), components)

	exportSvc := export.NewService(logger, posts, users, cfg.Export)
	if cfg.Storage.Enabled() {
		mirror, err := objectstore.NewMinioStore(ctx,
			cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
			cfg.Storage.Bucket, cfg.Storage.UseSSL,
		)
		if err != nil {
			return err
		}
		exportSvc.MirrorTo(mirror)
		health.WithOptional("storage", mirror)
	}

	if cfg.Seed.Enabled {
		if err := blogSvc.EnsureWelcomePost(ctx, cfg.Seed.AuthorUsername); err != nil {
			return fmt.Errorf("seed welcome post: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Auth: rest.NewAuthHandler(authSvc, rest.CookieSettings{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}, cfg.Server.MaxBodyBytes, logger),
		Posts:     rest.NewPostHandler(blogSvc, cfg.Server.MaxBodyBytes, logger),
		Assistant: rest.NewAssistantHandler(assistantSvc, cfg.Server.MaxBodyBytes, logger),
		Payment:   rest.NewPaymentHandler(paymentSvc, logger),
		Export:    rest.NewExportHandler(exportSvc, logger),
		Health:    health,
	}, rest.RouterDeps{
		Session:     middleware.Session(authSvc, cfg.Session.CookieName, logger),
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Logger:      logger,
	})

	sweeper, err := newSessionSweeper(cfg.Session, authSvc, logger)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := serve(ctx, srv, cfg.Server, logger)

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := exportSvc.Wait(drainCtx); err != nil {
		logger.Warn("archive uploads still pending at exit", slog.String("error", err.Error()))
	}

	return serveErr
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

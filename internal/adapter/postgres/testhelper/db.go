package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/config"
)

const (
	// DSNEnv points the helpers at an already running database instead of a container.
	DSNEnv = "THIRD_WAY_TEST_DATABASE_URL"
	// ImageEnv overrides the container image.
	ImageEnv = "THIRD_WAY_TEST_POSTGRES_IMAGE"

	defaultImage = "postgres:17-alpine"
)

// Tables lists every application table in dependency order (children first).
var Tables = []string{"sessions", "comments", "witch_assistants", "posts", "users"}

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a migrated database shared by the whole
// test binary. The database is DSNEnv when set, otherwise a PostgreSQL
// container started on first use. The pool closes via t.Cleanup.
// Skipped in -short mode.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test: skipped in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = prepareDatabase()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             sharedDSN,
		MaxConns:        8,
		ApplicationName: "third-way-tests",
	})
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// TruncateAll empties every application table. Not safe for tests that
// run in parallel against the same database.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	stmt := "TRUNCATE " + strings.Join(Tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(context.Background(), stmt); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := postgres.MigrateDSN(ctx, dsn, logger); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	image := os.Getenv(ImageEnv)
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "witch",
				"POSTGRES_PASSWORD": "grimoire",
				"POSTGRES_DB":       "thirdway",
			},
			// The entrypoint restarts postgres once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://witch:grimoire@%s:%s/thirdway?sslmode=disable", host, port.Port()), nil
}

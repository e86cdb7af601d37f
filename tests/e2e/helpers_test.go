//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	assistantrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/assistant"
	commentrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/comment"
	postrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/post"
	"github.com/WillSanton/WebSite/internal/adapter/postgres/session"
	"github.com/WillSanton/WebSite/internal/adapter/postgres/testhelper"
	userrepo "github.com/WillSanton/WebSite/internal/adapter/postgres/user"
	authpkg "github.com/WillSanton/WebSite/internal/auth"
	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/service/assistant"
	authsvc "github.com/WillSanton/WebSite/internal/service/auth"
	"github.com/WillSanton/WebSite/internal/service/blog"
	"github.com/WillSanton/WebSite/internal/service/export"
	"github.com/WillSanton/WebSite/internal/service/payment"
	"github.com/WillSanton/WebSite/internal/transport/middleware"
	"github.com/WillSanton/WebSite/internal/transport/rest"
)

const cookieName = "third_way.sid"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper). Payments are
// disabled; exports read a small fixture tree.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	users := userrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	assistants := assistantrepo.New(pool)
	sessions := session.New(pool)

	authCfg := config.AuthConfig{
		SessionSecret: "test-secret-at-least-32-chars-long!!",
		Issuer:        "test-issuer",
		BcryptCost:    4,
	}
	sessionCfg := config.SessionConfig{Backend: "postgres", TTL: time.Hour, CookieName: cookieName}

	signer := authpkg.NewCookieSigner(authCfg.SessionSecret, authCfg.Issuer)
	authService := authsvc.NewService(logger, users, sessions, signer, authCfg, sessionCfg)
	blogService := blog.NewService(logger, posts, comments, users)
	assistantService := assistant.NewService(logger, assistants)
	paymentService := payment.NewService(logger, nil, assistantService, config.PaymentConfig{})
	exportService := export.NewService(logger, posts, users, config.ExportConfig{
		TempDir:        t.TempDir(),
		ProjectRoot:    projectFixture(t),
		ProjectExclude: "node_modules,*.zip",
	})

	require.NoError(t, blogService.EnsureWelcomePost(context.Background(), "thirdway"))

	const maxBytes = 1 << 20
	handler := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, rest.CookieSettings{Name: cookieName}, maxBytes, logger),
		Posts:     rest.NewPostHandler(blogService, maxBytes, logger),
		Assistant: rest.NewAssistantHandler(assistantService, maxBytes, logger),
		Payment:   rest.NewPaymentHandler(paymentService, logger),
		Export:    rest.NewExportHandler(exportService, logger),
		Health:    rest.NewHealthHandler("e2e", map[string]rest.Pinger{"database": pool}),
	}, rest.RouterDeps{
		Session: middleware.Session(authService, cookieName, logger),
		CORS:    config.CORSConfig{AllowedOrigins: "*"},
		Logger:  logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

func projectFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range map[string]string{
		"go.mod":                  "module example\n",
		"cmd/server/main.go":      "package main\n",
		"node_modules/x/index.js": "ignored",
		"old.zip":                 "ignored",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// ---------------------------------------------------------------------------
// Browser-like client with its own cookie jar.
// ---------------------------------------------------------------------------

type browser struct {
	t    *testing.T
	base string
	http *http.Client
}

func (ts *testServer) newBrowser(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{t: t, base: ts.URL, http: &http.Client{Jar: jar, Timeout: 30 * time.Second}}
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
func (b *browser) do(method, path string, body, out any) int {
	b.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(b.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, b.base+path, reader)
	require.NoError(b.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(b.t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, path)
	}
	return resp.StatusCode
}

func (b *browser) get(path string) *http.Response {
	b.t.Helper()
	resp, err := b.http.Get(b.base + path)
	require.NoError(b.t, err)
	return resp
}

type user struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Slug        string    `json:"slug"`
	AuthorID    int64     `json:"authorId"`
	PublishedAt time.Time `json:"publishedAt"`
}

type comment struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
	PostID   int64  `json:"postId"`
}

type message struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// registerUser registers a fresh account and returns its logged-in browser.
func registerUser(t *testing.T, ts *testServer, password string) (*browser, user) {
	t.Helper()

	b := ts.newBrowser(t)
	var u user
	status := b.do(http.MethodPost, "/api/register", map[string]string{
		"username": uniqueName("user"),
		"password": password,
	}, &u)
	require.Equal(t, http.StatusCreated, status)
	return b, u
}

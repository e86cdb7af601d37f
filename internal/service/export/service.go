package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/domain"
)

// postLister defines the post repository interface needed by export service.
type postLister interface {
	List(ctx context.Context) ([]domain.Post, error)
}

// authorRepo resolves post authors in batches.
type authorRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// archiveMirror receives a copy of every posts archive.
type archiveMirror interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
}

// defaultMirrorTimeout bounds one background archive upload.
const defaultMirrorTimeout = 2 * time.Minute

// Service builds downloadable zip archives.
type Service struct {
	log           *slog.Logger
	posts         postLister
	authors       authorRepo
	mirror        archiveMirror
	mirrorTimeout time.Duration
	uploads       sync.WaitGroup
	tempDir       string
	projectRoot   string
	excludes      []string
	now           func() time.Time
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, posts postLister, authors authorRepo, cfg config.ExportConfig) *Service {
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &Service{
		log:           logger.With("service", "export"),
		posts:         posts,
		authors:       authors,
		mirrorTimeout: defaultMirrorTimeout,
		tempDir:       tempDir,
		projectRoot:   cfg.ProjectRoot,
		excludes:      cfg.ExcludePatterns(),
		now:           time.Now,
	}
}

// MirrorTo uploads a copy of every posts archive to m in the background.
// Upload failures are logged and never fail the export.
func (s *Service) MirrorTo(m archiveMirror) {
	s.mirror = m
}

// Wait blocks until background mirror uploads finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.uploads.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

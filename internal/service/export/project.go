package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/moby/patternmatcher"

	"github.com/WillSanton/WebSite/internal/metrics"
)

const projectPrefix = "third-way-project"

// ExportProject archives the source tree under the configured project root,
// skipping paths that match the dockerignore-style exclude patterns.
// Dotfiles are included; only regular files are archived.
func (s *Service) ExportProject(ctx context.Context) (*Archive, error) {
	start := time.Now()

	pm, err := patternmatcher.New(s.excludes)
	if err != nil {
		return nil, fmt.Errorf("export.ExportProject patterns: %w", err)
	}

	root, err := filepath.Abs(s.projectRoot)
	if err != nil {
		return nil, fmt.Errorf("export.ExportProject root: %w", err)
	}

	archive, err := s.build(projectPrefix, func(w *entryWriter) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if rel == "." {
				return nil
			}

			// Never archive our own in-progress output.
			if path == w.self {
				return nil
			}

			excluded, err := pm.MatchesOrParentMatches(rel)
			if err != nil {
				return err
			}
			if excluded {
				if d.IsDir() && !pm.Exclusions() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}
			return addFile(w, path, filepath.ToSlash(rel))
		})
	})
	metrics.RecordArchive("project", time.Since(start), err == nil)
	if err != nil {
		s.log.ErrorContext(ctx, "project export failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("export.ExportProject: %w", err)
	}

	s.log.InfoContext(ctx, "project exported",
		slog.String("archive", archive.Name),
		slog.Int("files", archive.Entries),
		slog.Int64("bytes", archive.Size),
	)

	return archive, nil
}

func addFile(w *entryWriter, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	w.count++

	_, err = io.Copy(dst, src)
	return err
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/export"
)

type exportService interface {
	ExportPosts(ctx context.Context) (*export.Archive, error)
	ExportProject(ctx context.Context) (*export.Archive, error)
}

// ExportHandler streams zip archives built by the export service.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

// ExportPosts handles GET /api/export-zip.
func (h *ExportHandler) ExportPosts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.ExportPosts)
}

// DownloadProject handles GET /api/download-project.
func (h *ExportHandler) DownloadProject(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.ExportProject)
}

func (h *ExportHandler) serve(w http.ResponseWriter, r *http.Request, build func(context.Context) (*export.Archive, error)) {
	ctx := r.Context()

	archive, err := build(ctx)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	defer func() {
		if err := archive.Remove(); err != nil {
			h.log.WarnContext(ctx, "remove archive",
				slog.String("name", archive.Name),
				slog.String("error", err.Error()),
			)
		}
	}()

	f, err := archive.Open()
	if err != nil {
		h.handleError(w, r, fmt.Errorf("%w: open %s: %w", domain.ErrArchive, archive.Name, err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Name))
	w.Header().Set("Content-Length", strconv.FormatInt(archive.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		// Headers are already sent; the client sees a truncated download.
		h.log.WarnContext(ctx, "stream archive",
			slog.String("name", archive.Name),
			slog.String("error", err.Error()),
		)
	}
}

func (h *ExportHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrArchive) {
		h.log.ErrorContext(r.Context(), "build archive", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to create archive")
		return
	}
	handleServiceError(w, r, h.log, err, "Archive already exists")
}

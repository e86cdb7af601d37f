package export

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/metrics"
)

const postsPrefix = "third-way-export"

//go:embed post.html.tmpl
var postPageSource string

var postPage = template.Must(template.New("post").Parse(postPageSource))

// postDocument is the JSON entry written for each post.
type postDocument struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Slug        string    `json:"slug"`
	AuthorID    int64     `json:"authorId"`
	PublishedAt time.Time `json:"publishedAt"`
}

// postPageData feeds the HTML entry template. Post content is stored HTML
// and is embedded unescaped.
type postPageData struct {
	Title    string
	Category string
	Author   string
	Content  template.HTML
}

// ExportPosts writes every post as a JSON entry and a rendered HTML entry
// named post-<id>-<slug>.{json,html}. The archive holds exactly two entries
// per post.
func (s *Service) ExportPosts(ctx context.Context) (*Archive, error) {
	start := time.Now()

	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export.ExportPosts list: %w", err)
	}

	authors, err := resolveAuthors(ctx, s.authors, posts)
	if err != nil {
		return nil, fmt.Errorf("export.ExportPosts authors: %w", err)
	}

	archive, err := s.build(postsPrefix, func(w *entryWriter) error {
		for _, p := range posts {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writePost(w, p, authors[p.AuthorID]); err != nil {
				return err
			}
		}
		return nil
	})
	metrics.RecordArchive("posts", time.Since(start), err == nil)
	if err != nil {
		s.log.ErrorContext(ctx, "posts export failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("export.ExportPosts: %w", err)
	}

	s.log.InfoContext(ctx, "posts exported",
		slog.String("archive", archive.Name),
		slog.Int("posts", len(posts)),
		slog.Int64("bytes", archive.Size),
	)

	s.mirrorArchive(ctx, archive)

	return archive, nil
}

func writePost(w *entryWriter, p domain.Post, author string) error {
	base := fmt.Sprintf("post-%d-%s", p.ID, p.Slug)

	doc, err := json.MarshalIndent(postDocument{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		Category:    p.Category.String(),
		Slug:        p.Slug,
		AuthorID:    p.AuthorID,
		PublishedAt: p.PublishedAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal post %d: %w", p.ID, err)
	}
	if err := w.add(base+".json", doc); err != nil {
		return err
	}

	var page bytes.Buffer
	err = postPage.Execute(&page, postPageData{
		Title:    p.Title,
		Category: p.Category.String(),
		Author:   author,
		Content:  template.HTML(p.Content), //nolint:gosec // post bodies are stored HTML
	})
	if err != nil {
		return fmt.Errorf("render post %d: %w", p.ID, err)
	}
	return w.add(base+".html", page.Bytes())
}

// mirrorArchive uploads a copy of archive in the background when a mirror
// is configured. The file is opened before returning, so the caller may
// remove the archive as soon as its download finishes. The upload outlives
// the request but is bounded by mirrorTimeout.
func (s *Service) mirrorArchive(ctx context.Context, archive *Archive) {
	if s.mirror == nil {
		return
	}

	key := filepath.Base(archive.Path)
	log := s.log.With(slog.String("archive", key))

	f, err := archive.Open()
	if err != nil {
		log.WarnContext(ctx, "archive mirror skipped", slog.String("error", err.Error()))
		return
	}

	mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.mirrorTimeout)
	s.uploads.Add(1)
	go func() {
		defer s.uploads.Done()
		defer cancel()
		defer f.Close()

		if err := s.mirror.Put(mctx, key, f, archive.Size, ContentType); err != nil {
			log.WarnContext(mctx, "archive mirror failed", slog.String("error", err.Error()))
			return
		}
		log.InfoContext(mctx, "archive mirrored")
	}()
}

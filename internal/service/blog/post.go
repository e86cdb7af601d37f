package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// ListPosts returns every post, oldest publication first.
func (s *Service) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog.ListPosts: %w", err)
	}
	return posts, nil
}

// GetPost returns the post with the given slug or ErrNotFound.
func (s *Service) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("blog.GetPost: %w", err)
	}
	return post, nil
}

// CreatePost publishes a post authored by the caller.
// A taken slug returns ErrAlreadyExists; the existing post is never overwritten.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.posts.Create(ctx, domain.Post{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Category:    input.Category,
		Slug:        input.Slug,
		AuthorID:    userID,
		PublishedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("blog.CreatePost slug %q: %w", input.Slug, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("blog.CreatePost: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.Int64("user_id", userID),
		slog.Int64("post_id", created.ID),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// SearchPosts filters posts by a case-insensitive substring over title,
// content and excerpt, and by category. Both filters are optional and
// compose with AND; without filters every post is returned.
func (s *Service) SearchPosts(ctx context.Context, input SearchInput) ([]domain.Post, error) {
	filter := domain.PostFilter{
		Query:    domain.NormalizeQuery(input.Query),
		Category: input.Category,
	}

	if filter.Query == "" && !filter.HasCategory() {
		return s.ListPosts(ctx)
	}

	posts, err := s.posts.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("blog.SearchPosts: %w", err)
	}
	return posts, nil
}

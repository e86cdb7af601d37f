package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// ListComments returns the comments of the post with the given slug,
// oldest first. Returns ErrNotFound when the post does not exist.
func (s *Service) ListComments(ctx context.Context, slug string) ([]domain.Comment, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("blog.ListComments get post: %w", err)
	}

	comments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("blog.ListComments: %w", err)
	}
	return comments, nil
}

// CreateComment attaches a comment by the caller to the post with the given slug.
func (s *Service) CreateComment(ctx context.Context, slug string, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("blog.CreateComment get post: %w", err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, domain.Comment{
		Content:  input.Content,
		AuthorID: userID,
		PostID:   post.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("blog.CreateComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("user_id", userID),
		slog.Int64("post_id", post.ID),
		slog.Int64("comment_id", created.ID),
	)

	return created, nil
}

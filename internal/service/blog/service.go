package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/WillSanton/WebSite/internal/domain"
)

// postRepo defines the post repository interface needed by blog service.
type postRepo interface {
	List(ctx context.Context) ([]domain.Post, error)
	Search(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
}

// commentRepo defines the comment repository interface needed by blog service.
type commentRepo interface {
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
}

// userRepo is used only by welcome-post seeding.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

// Service implements posts, comments and search.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	comments commentRepo
	users    userRepo
	now      func() time.Time
}

// NewService creates a new blog service instance.
func NewService(logger *slog.Logger, posts postRepo, comments commentRepo, users userRepo) *Service {
	return &Service{
		log:      logger.With("service", "blog"),
		posts:    posts,
		comments: comments,
		users:    users,
		now:      time.Now,
	}
}

// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new comment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const commentColumns = `id, content, author_id, post_id, created_at`

const listByPostSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE post_id = $1
ORDER BY created_at ASC, id ASC`

const createSQL = `
INSERT INTO comments (content, author_id, post_id)
VALUES ($1, $2, $3)
RETURNING ` + commentColumns

type commentRow struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	AuthorID  int64     `db:"author_id"`
	PostID    int64     `db:"post_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		PostID:    r.PostID,
		CreatedAt: r.CreatedAt,
	}
}

// ListByPost returns the comments of a post, oldest first.
func (r *Repo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var rows []commentRow
	if err := pgxscan.Select(ctx, r.q, &rows, listByPostSQL, postID); err != nil {
		return nil, fmt.Errorf("list comments for post %d: %w", postID, err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, nil
}

// Create inserts a comment; created_at is assigned by the database.
// A missing post or author surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, r.q, &row, createSQL, c.Content, c.AuthorID, c.PostID); err != nil {
		return nil, postgres.MapError(err, "comment for post", c.PostID)
	}

	created := row.toDomain()
	return &created, nil
}

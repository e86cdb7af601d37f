// Package post implements the Post repository using PostgreSQL.
// Queries are composed with squirrel so search filters stay composable.
package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new post repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const tableName = "posts"

var postColumns = []string{
	"id", "title", "content", "excerpt", "category", "slug", "author_id", "published_at",
}

type postRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Excerpt     string    `db:"excerpt"`
	Category    string    `db:"category"`
	Slug        string    `db:"slug"`
	AuthorID    int64     `db:"author_id"`
	PublishedAt time.Time `db:"published_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Category:    domain.Category(r.Category),
		Slug:        r.Slug,
		AuthorID:    r.AuthorID,
		PublishedAt: r.PublishedAt,
	}
}

// selectBuilder returns the base query with the canonical publish-time order.
func selectBuilder() sq.SelectBuilder {
	return postgres.Builder().
		Select(postColumns...).
		From(tableName).
		OrderBy("published_at ASC", "id ASC")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every post ordered by publish time ascending.
func (r *Repo) List(ctx context.Context) ([]domain.Post, error) {
	return r.selectPosts(ctx, selectBuilder())
}

// Search returns posts matching the filter. The query is a case-insensitive
// literal substring match on title, content or excerpt; LIKE wildcards in
// it are escaped. Both filters are combined with AND.
func (r *Repo) Search(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	query := selectBuilder()

	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
			sq.ILike{"excerpt": pattern},
		})
	}

	if filter.HasCategory() {
		query = query.Where(sq.Eq{"category": filter.Category.String()})
	}

	return r.selectPosts(ctx, query)
}

// GetBySlug returns the post with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	sql, args, err := postgres.Builder().
		Select(postColumns...).
		From(tableName).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query: %w", err)
	}

	var row postRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", slug)
	}

	p := row.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a post and returns it with its assigned id.
// Returns domain.ErrAlreadyExists when the slug is taken.
func (r *Repo) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	sql, args, err := postgres.Builder().
		Insert(tableName).
		Columns("title", "content", "excerpt", "category", "slug", "author_id", "published_at").
		Values(p.Title, p.Content, p.Excerpt, p.Category.String(), p.Slug, p.AuthorID, p.PublishedAt).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post query: %w", err)
	}

	var row postRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", p.Slug)
	}

	created := row.toDomain()
	return &created, nil
}

func (r *Repo) selectPosts(ctx context.Context, query sq.SelectBuilder) ([]domain.Post, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select posts query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}

	posts := make([]domain.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s a literal LIKE pattern fragment (backslash is the
// default escape character in PostgreSQL).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

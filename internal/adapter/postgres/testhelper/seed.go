package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WillSanton/WebSite/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and an unusable password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		Username:     "seed-" + uniqueSuffix(),
		PasswordHash: "x",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		user.Username, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPost creates a Tarot post by authorID with a unique slug.
func SeedPost(t *testing.T, pool *pgxpool.Pool, authorID int64) domain.Post {
	t.Helper()

	suffix := uniqueSuffix()
	post := domain.Post{
		Title:       "Seeded " + suffix,
		Content:     "<p>seeded</p>",
		Excerpt:     "seeded",
		Category:    domain.CategoryTarot,
		Slug:        "seeded-" + suffix,
		AuthorID:    authorID,
		PublishedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (title, content, excerpt, category, slug, author_id, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		post.Title, post.Content, post.Excerpt, string(post.Category), post.Slug, post.AuthorID, post.PublishedAt,
	).Scan(&post.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return post
}

// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, username, password`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

const getByIDsSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = ANY($1)`

const createSQL = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users SET password = $2 WHERE id = $1`

type userRow struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.Password}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	if err := r.q.QueryRow(ctx, getByIDSQL, id).Scan(&row.ID, &row.Username, &row.Password); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	if err := r.q.QueryRow(ctx, getByUsernameSQL, username).Scan(&row.ID, &row.Username, &row.Password); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, r.q, &rows, getByIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// username is taken.
func (r *Repo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	var row userRow
	err := r.q.QueryRow(ctx, createSQL, username, passwordHash).Scan(&row.ID, &row.Username, &row.Password)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := row.toDomain()
	return &u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.q.Exec(ctx, updatePasswordSQL, id, passwordHash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

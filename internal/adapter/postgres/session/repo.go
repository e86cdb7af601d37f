// Package session implements the cookie-session store using PostgreSQL.
// It is the default session backend; see adapter/redis/session for the other.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new session repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, expires_at, created_at`

const createSQL = `
INSERT INTO sessions (id, user_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

const getSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1 AND expires_at > now()`

const deleteSQL = `
DELETE FROM sessions WHERE id = $1`

const deleteExpiredSQL = `
DELETE FROM sessions WHERE expires_at <= $1`

// Create stores a new session.
func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	if _, err := r.q.Exec(ctx, createSQL, s.ID, s.UserID, s.ExpiresAt, s.CreatedAt); err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// Get returns a live session. Expired and unknown sessions both return
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var s domain.Session
	err := r.q.QueryRow(ctx, getSQL, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return &s, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.q.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// DeleteExpired removes sessions that expired at or before now and
// returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

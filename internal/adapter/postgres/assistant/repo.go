// Package assistant implements the WitchAssistant repository using PostgreSQL.
// The customization document lives in a JSONB column and is always written whole.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/WillSanton/WebSite/internal/adapter/postgres"
	"github.com/WillSanton/WebSite/internal/domain"
)

// Repo provides witch assistant persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new assistant repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const tableName = "witch_assistants"

const assistantColumns = `id, user_id, name, customization, active, created_at`

const getByUserSQL = `
SELECT ` + assistantColumns + `
FROM witch_assistants
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

const activateSQL = `
INSERT INTO witch_assistants (user_id, name, customization, active)
VALUES ($1, $2, $3, true)
RETURNING ` + assistantColumns

// GetByUser returns the user's assistant, preferring the most recently
// created one. Returns domain.ErrNotFound when the user has none.
func (r *Repo) GetByUser(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	a, err := scanAssistant(r.q.QueryRow(ctx, getByUserSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "assistant for user", userID)
	}
	return a, nil
}

// Activate creates the user's assistant with the default name and
// customization. Returns domain.ErrAlreadyExists if one exists.
func (r *Repo) Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	doc, err := json.Marshal(domain.DefaultCustomization())
	if err != nil {
		return nil, fmt.Errorf("marshal default customization: %w", err)
	}

	a, err := scanAssistant(r.q.QueryRow(ctx, activateSQL, userID, domain.DefaultAssistantName, doc))
	if err != nil {
		return nil, postgres.MapError(err, "assistant for user", userID)
	}
	return a, nil
}

// Update applies the non-nil fields of patch to the user's assistant.
// Returns domain.ErrNotFound when the user has no assistant.
func (r *Repo) Update(ctx context.Context, userID int64, patch domain.AssistantPatch) (*domain.WitchAssistant, error) {
	if patch.IsEmpty() {
		return r.GetByUser(ctx, userID)
	}

	update := postgres.Builder().
		Update(tableName).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + assistantColumns)

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Customization != nil {
		doc, err := json.Marshal(patch.Customization)
		if err != nil {
			return nil, fmt.Errorf("marshal customization: %w", err)
		}
		update = update.Set("customization", doc)
	}
	if patch.Active != nil {
		update = update.Set("active", *patch.Active)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update assistant query: %w", err)
	}

	a, err := scanAssistant(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "assistant for user", userID)
	}
	return a, nil
}

func scanAssistant(row pgx.Row) (*domain.WitchAssistant, error) {
	var (
		a   domain.WitchAssistant
		doc []byte
	)

	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &doc, &a.Active, &a.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(doc, &a.Customization); err != nil {
		return nil, fmt.Errorf("unmarshal customization: %w", err)
	}
	a.Customization.Normalize()

	return &a, nil
}

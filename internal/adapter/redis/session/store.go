// Package session keeps cookie sessions in Redis with a native TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/WillSanton/WebSite/internal/domain"
)

const keyPrefix = "sess:"

// Store keeps sessions in Redis. Expired sessions are evicted by Redis.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

// NewClient builds a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type record struct {
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func key(id uuid.UUID) string { return keyPrefix + id.String() }

// Create writes the session with a TTL matching its expiry.
func (s *Store) Create(ctx context.Context, sess domain.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s: already expired", sess.ID)
	}

	payload, err := json.Marshal(record{UserID: sess.UserID, ExpiresAt: sess.ExpiresAt, CreatedAt: sess.CreatedAt})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, key(sess.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Get returns a live session or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	sess := &domain.Session{ID: id, UserID: rec.UserID, ExpiresAt: rec.ExpiresAt, CreatedAt: rec.CreatedAt}
	if sess.IsExpired(s.now()) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// Delete removes the session. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

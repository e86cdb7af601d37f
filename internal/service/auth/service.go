package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// sessionStore defines the session persistence interface needed by auth service.
// Implemented by the Postgres and Redis session adapters.
type sessionStore interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// expiredSessionDeleter is implemented by stores without native expiry.
type expiredSessionDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// cookieSigner defines the session cookie signing interface needed by auth service.
type cookieSigner interface {
	Sign(sessionID uuid.UUID, userID int64, expiresAt time.Time) (string, error)
	Verify(value string) (uuid.UUID, int64, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionStore
	signer   cookieSigner
	cost     int
	ttl      time.Duration
	now      func() time.Time

	dummyOnce sync.Once
	dummy     []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	signer cookieSigner,
	authCfg config.AuthConfig,
	sessionCfg config.SessionConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		signer:   signer,
		cost:     authCfg.BcryptCost,
		ttl:      sessionCfg.TTL,
		now:      time.Now,
	}
}

// establishSession stores a new session for user and returns the signed cookie.
func (s *Service) establishSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	now := s.now()
	sess := domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	cookie, err := s.signer.Sign(sess.ID, user.ID, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Cookie: cookie, ExpiresAt: sess.ExpiresAt}, nil
}

// dummyHash returns a hash used to equalize login timing for unknown users.
func (s *Service) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummy, _ = bcrypt.GenerateFromPassword([]byte("third-way-dummy-password"), s.cost)
	})
	return s.dummy
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

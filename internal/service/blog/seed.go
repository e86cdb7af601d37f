package blog

import (
	"context"
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/WillSanton/WebSite/internal/domain"
)

// WelcomeSlug is the slug of the post created on first start.
const WelcomeSlug = "welcome-to-third-way"

//go:embed welcome.html
var welcomeContent string

// EnsureWelcomePost creates the editorial author and the welcome post when
// they are missing. The author gets a random password nobody knows.
func (s *Service) EnsureWelcomePost(ctx context.Context, authorUsername string) error {
	_, err := s.posts.GetBySlug(ctx, WelcomeSlug)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("blog.EnsureWelcomePost lookup: %w", err)
	}

	author, err := s.ensureAuthor(ctx, authorUsername)
	if err != nil {
		return fmt.Errorf("blog.EnsureWelcomePost author: %w", err)
	}

	post, err := s.posts.Create(ctx, domain.Post{
		Title:       "Welcome to Third Way: A Journey Through Occult Knowledge",
		Content:     welcomeContent,
		Excerpt:     "Embark on a journey through occult wisdom, practical experiences, and mystical knowledge at Third Way, your guide to esoteric understanding.",
		Category:    domain.CategoryEsotericPhilosophy,
		Slug:        WelcomeSlug,
		AuthorID:    author.ID,
		PublishedAt: s.now().UTC(),
	})
	if err != nil {
		// Another instance seeded concurrently.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("blog.EnsureWelcomePost create: %w", err)
	}

	s.log.InfoContext(ctx, "welcome post seeded", slog.Int64("post_id", post.ID))
	return nil
}

func (s *Service) ensureAuthor(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err = s.users.Create(ctx, username, string(hash))
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.users.GetByUsername(ctx, username)
	}
	return user, err
}

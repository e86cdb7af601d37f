package assistant

import (
	"context"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
)

// assistantRepo defines the assistant repository interface needed by assistant service.
type assistantRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.WitchAssistant, error)
	Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error)
	Update(ctx context.Context, userID int64, patch domain.AssistantPatch) (*domain.WitchAssistant, error)
}

// Service implements witch assistant operations.
type Service struct {
	log        *slog.Logger
	assistants assistantRepo
}

// NewService creates a new assistant service instance.
func NewService(logger *slog.Logger, assistants assistantRepo) *Service {
	return &Service{
		log:        logger.With("service", "assistant"),
		assistants: assistants,
	}
}

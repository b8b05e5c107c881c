package repositories

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
)

// ChatRepository defines direct-message persistence
type ChatRepository interface {
	Create(ctx context.Context, msg *entities.ChatMessage) error
	// ListBetween returns the full history for the unordered pair (a, b),
	// ascending by sent time.
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error)
}

// AiChatRepository defines assistant-transcript persistence
type AiChatRepository interface {
	Append(ctx context.Context, msg *entities.AiChatMessage) error
	ListBySession(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error)
	ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error)
}

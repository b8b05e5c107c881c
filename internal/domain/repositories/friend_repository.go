package repositories

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
)

// FriendRepository defines friend-graph operations. Edges are directional;
// Add is an idempotent upsert and Remove a no-op when the edge is absent.
type FriendRepository interface {
	Add(ctx context.Context, accountID, friendID uuid.UUID) error
	Remove(ctx context.Context, accountID, friendID uuid.UUID) error
	List(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error)
	// Exists reports whether the edge (accountID -> friendID) is present.
	Exists(ctx context.Context, accountID, friendID uuid.UUID) (bool, error)
}

// DirectoryRepository defines prefix search over wallet addresses and emails
type DirectoryRepository interface {
	SearchByWalletPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error)
	SearchByEmailPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error)
}

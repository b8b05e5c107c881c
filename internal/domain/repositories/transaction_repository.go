package repositories

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
)

// TransactionRepository defines the append-only transfer ledger. There is no
// update or delete path apart from the verification stamp.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	ListByParticipant(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error)
	ListUnverified(ctx context.Context, limit int) ([]*entities.Transaction, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

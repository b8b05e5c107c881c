package repositories

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetBySubject(ctx context.Context, subject string) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error)
}

// IdentityRepository defines linked email/wallet operations
type IdentityRepository interface {
	Create(ctx context.Context, identity *entities.LinkedIdentity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LinkedIdentity, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.LinkedIdentity, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// PrimaryWallet returns the account's custodial wallet when one exists,
	// otherwise the lowest-index wallet.
	PrimaryWallet(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error)
	PrimaryEmail(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error)
}

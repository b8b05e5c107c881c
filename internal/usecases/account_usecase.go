package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/infrastructure/blockchain"
)

// AccountUsecase handles profile and linked-identity business logic
type AccountUsecase struct {
	accountRepo  repositories.AccountRepository
	identityRepo repositories.IdentityRepository
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(accountRepo repositories.AccountRepository, identityRepo repositories.IdentityRepository) *AccountUsecase {
	return &AccountUsecase{
		accountRepo:  accountRepo,
		identityRepo: identityRepo,
	}
}

// GetProfile returns the account with its linked identities
func (u *AccountUsecase) GetProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, []*entities.LinkedIdentity, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	identities, err := u.identityRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	return account, identities, nil
}

// UpdateProfile applies partial profile edits. A username change fails with a
// conflict when the name is taken by another account.
func (u *AccountUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error) {
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if len(username) < 2 {
			return nil, domainerrors.BadRequest("username must be at least 2 characters")
		}
		input.Username = &username

		existing, err := u.accountRepo.GetByUsername(ctx, username)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != accountID {
			return nil, domainerrors.Conflict("username already taken")
		}
	}

	return u.accountRepo.UpdateProfile(ctx, accountID, input)
}

// LinkIdentity attaches an email or wallet to the account
func (u *AccountUsecase) LinkIdentity(ctx context.Context, accountID uuid.UUID, input entities.LinkIdentityInput) (*entities.LinkedIdentity, error) {
	now := time.Now()
	identity := &entities.LinkedIdentity{
		ID:        uuid.New(),
		AccountID: accountID,
		CreatedAt: now,
	}

	switch entities.IdentityType(input.Type) {
	case entities.IdentityTypeEmail:
		email := strings.ToLower(strings.TrimSpace(input.Value))
		if !strings.Contains(email, "@") {
			return nil, domainerrors.BadRequest("invalid email address")
		}
		identity.Type = entities.IdentityTypeEmail
		identity.Value = email
	case entities.IdentityTypeWallet:
		if !blockchain.IsValidAddress(input.Value) {
			return nil, domainerrors.BadRequest("invalid wallet address")
		}
		identity.Type = entities.IdentityTypeWallet
		identity.Value = input.Value
		identity.ChainType = input.ChainType
		identity.ClientType = entities.WalletClientExternal
		if input.ClientType != "" {
			identity.ClientType = entities.WalletClientType(input.ClientType)
		}
	default:
		return nil, domainerrors.BadRequest("identity type must be email or wallet")
	}

	if err := u.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// UnlinkIdentity detaches an identity. The last remaining identity cannot be
// removed because the account would become unreachable.
func (u *AccountUsecase) UnlinkIdentity(ctx context.Context, accountID, identityID uuid.UUID) error {
	identity, err := u.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		return err
	}
	if identity.AccountID != accountID {
		return domainerrors.ErrNotFound
	}

	count, err := u.identityRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domainerrors.ErrLastIdentity
	}

	return u.identityRepo.Delete(ctx, identityID)
}

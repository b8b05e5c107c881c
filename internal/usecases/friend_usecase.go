package usecases

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
)

// FriendUsecase handles friend-graph business logic. Edges are directional
// and require no acceptance from the other side.
type FriendUsecase struct {
	friendRepo  repositories.FriendRepository
	accountRepo repositories.AccountRepository
}

// NewFriendUsecase creates a new friend usecase
func NewFriendUsecase(friendRepo repositories.FriendRepository, accountRepo repositories.AccountRepository) *FriendUsecase {
	return &FriendUsecase{
		friendRepo:  friendRepo,
		accountRepo: accountRepo,
	}
}

// Add records the edge (accountID -> friendID). Re-adding is a no-op.
func (u *FriendUsecase) Add(ctx context.Context, accountID, friendID uuid.UUID) error {
	if accountID == friendID {
		return domainerrors.BadRequest("cannot add yourself as a friend")
	}
	if _, err := u.accountRepo.GetByID(ctx, friendID); err != nil {
		return err
	}
	return u.friendRepo.Add(ctx, accountID, friendID)
}

// Remove deletes the edge (accountID -> friendID). Removing an absent edge
// succeeds.
func (u *FriendUsecase) Remove(ctx context.Context, accountID, friendID uuid.UUID) error {
	return u.friendRepo.Remove(ctx, accountID, friendID)
}

// List returns the caller's contacts with primary email and wallet
func (u *FriendUsecase) List(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error) {
	return u.friendRepo.List(ctx, accountID)
}

package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/domain/repositories"
)

const searchLimit = 20

// ContactSearchUsecase resolves partial wallet addresses and emails to
// accounts. Results are annotated with the caller's friendship status so the
// client can offer an add-contact affordance inline.
type ContactSearchUsecase struct {
	directoryRepo repositories.DirectoryRepository
	friendRepo    repositories.FriendRepository
}

// NewContactSearchUsecase creates a new contact search usecase
func NewContactSearchUsecase(directoryRepo repositories.DirectoryRepository, friendRepo repositories.FriendRepository) *ContactSearchUsecase {
	return &ContactSearchUsecase{
		directoryRepo: directoryRepo,
		friendRepo:    friendRepo,
	}
}

// Search runs a prefix search over the identity directory. A query starting
// with "0x" also searches wallet addresses; emails are always searched. An
// address match wins over an email match for the same account.
func (u *ContactSearchUsecase) Search(ctx context.Context, callerID uuid.UUID, query string) ([]*entities.DirectoryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entities.DirectoryEntry{}, nil
	}

	var entries []*entities.DirectoryEntry
	if strings.HasPrefix(strings.ToLower(query), "0x") {
		walletMatches, err := u.directoryRepo.SearchByWalletPrefix(ctx, query, callerID, searchLimit)
		if err != nil {
			return nil, err
		}
		entries = append(entries, walletMatches...)
	}

	emailMatches, err := u.directoryRepo.SearchByEmailPrefix(ctx, query, callerID, searchLimit)
	if err != nil {
		return nil, err
	}
	entries = append(entries, emailMatches...)

	// wallet entries were appended first and win the dedupe
	seen := make(map[uuid.UUID]bool, len(entries))
	results := make([]*entities.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.AccountID] {
			continue
		}
		seen[entry.AccountID] = true

		isFriend, err := u.friendRepo.Exists(ctx, callerID, entry.AccountID)
		if err != nil {
			return nil, err
		}
		entry.IsFriend = isFriend
		results = append(results, entry)

		if len(results) == searchLimit {
			break
		}
	}

	return results, nil
}

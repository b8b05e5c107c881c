package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pocketpay.backend/internal/domain/entities"
)

// DirectoryRepositoryImpl implements prefix search over linked identities
type DirectoryRepositoryImpl struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepositoryImpl {
	return &DirectoryRepositoryImpl{db: db}
}

type directoryRow struct {
	AccountID       uuid.UUID
	Username        string
	ProfileImageURL string
	Email           string
	WalletAddress   string
}

// SearchByWalletPrefix matches wallet addresses case-insensitively by prefix,
// excluding the caller's own account.
func (r *DirectoryRepositoryImpl) SearchByWalletPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	return r.search(ctx, "wallet", prefix, exclude, limit)
}

// SearchByEmailPrefix matches emails case-insensitively by prefix, excluding
// the caller's own account.
func (r *DirectoryRepositoryImpl) SearchByEmailPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	return r.search(ctx, "email", prefix, exclude, limit)
}

func (r *DirectoryRepositoryImpl) search(ctx context.Context, identityType, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	pattern := strings.ToLower(escapeLike(prefix)) + "%"

	var rows []directoryRow
	err := GetDB(ctx, r.db).WithContext(ctx).Raw(`
		SELECT DISTINCT a.id AS account_id,
		       a.username AS username,
		       a.profile_image_url AS profile_image_url,
		       COALESCE((SELECT e.value FROM linked_identities e
		                 WHERE e.account_id = a.id AND e.type = 'email' AND e.deleted_at IS NULL
		                 ORDER BY e.created_at ASC LIMIT 1), '') AS email,
		       COALESCE((SELECT w.value FROM linked_identities w
		                 WHERE w.account_id = a.id AND w.type = 'wallet' AND w.deleted_at IS NULL
		                 ORDER BY CASE WHEN w.client_type = 'custodial' THEN 0 ELSE 1 END, w.wallet_index ASC
		                 LIMIT 1), '') AS wallet_address
		FROM linked_identities li
		JOIN accounts a ON a.id = li.account_id AND a.deleted_at IS NULL
		WHERE li.type = ? AND li.deleted_at IS NULL
		  AND LOWER(li.value) LIKE ? ESCAPE '\'
		  AND a.id <> ?
		ORDER BY a.username ASC
		LIMIT ?`, identityType, pattern, exclude, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.DirectoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entities.DirectoryEntry{
			AccountID:       row.AccountID,
			Username:        row.Username,
			ProfileImageURL: row.ProfileImageURL,
			Email:           row.Email,
			WalletAddress:   row.WalletAddress,
		})
	}
	return entries, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

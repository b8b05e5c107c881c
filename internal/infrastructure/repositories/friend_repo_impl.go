package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/infrastructure/models"
)

// FriendRepositoryImpl implements FriendRepository
type FriendRepositoryImpl struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepositoryImpl {
	return &FriendRepositoryImpl{db: db}
}

// Add inserts the directional edge. Duplicate adds are no-ops.
func (r *FriendRepositoryImpl) Add(ctx context.Context, accountID, friendID uuid.UUID) error {
	m := &models.FriendEdge{
		AccountID: accountID,
		FriendID:  friendID,
		CreatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// Remove deletes the edge if present; absent edges are a no-op.
func (r *FriendRepositoryImpl) Remove(ctx context.Context, accountID, friendID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ? AND friend_id = ?", accountID, friendID).
		Delete(&models.FriendEdge{}).Error
}

type contactRow struct {
	AccountID       uuid.UUID
	Username        string
	ProfileImageURL string
	Email           string
	WalletAddress   string
	AddedAt         time.Time
}

// List returns the accounts this account has added, each joined with the
// friend's primary email and wallet address.
func (r *FriendRepositoryImpl) List(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error) {
	var rows []contactRow
	err := GetDB(ctx, r.db).WithContext(ctx).Raw(`
		SELECT a.id AS account_id,
		       a.username AS username,
		       a.profile_image_url AS profile_image_url,
		       fe.created_at AS added_at,
		       COALESCE((SELECT li.value FROM linked_identities li
		                 WHERE li.account_id = a.id AND li.type = 'email' AND li.deleted_at IS NULL
		                 ORDER BY li.created_at ASC LIMIT 1), '') AS email,
		       COALESCE((SELECT li.value FROM linked_identities li
		                 WHERE li.account_id = a.id AND li.type = 'wallet' AND li.deleted_at IS NULL
		                 ORDER BY CASE WHEN li.client_type = 'custodial' THEN 0 ELSE 1 END, li.wallet_index ASC
		                 LIMIT 1), '') AS wallet_address
		FROM friend_edges fe
		JOIN accounts a ON a.id = fe.friend_id AND a.deleted_at IS NULL
		WHERE fe.account_id = ?
		ORDER BY fe.created_at DESC`, accountID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	contacts := make([]*entities.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, &entities.Contact{
			AccountID:       row.AccountID,
			Username:        row.Username,
			ProfileImageURL: row.ProfileImageURL,
			Email:           row.Email,
			WalletAddress:   row.WalletAddress,
			AddedAt:         row.AddedAt,
		})
	}
	return contacts, nil
}

// Exists reports whether the edge (accountID -> friendID) is present
func (r *FriendRepositoryImpl) Exists(ctx context.Context, accountID, friendID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FriendEdge{}).
		Where("account_id = ? AND friend_id = ?", accountID, friendID).
		Count(&count).Error
	return count > 0, err
}

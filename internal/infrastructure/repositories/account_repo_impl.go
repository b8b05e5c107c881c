package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	m := &models.Account{
		ID:               account.ID,
		Subject:          account.Subject,
		Username:         account.Username,
		ProfileImageURL:  account.ProfileImageURL,
		HasAcceptedTerms: account.HasAcceptedTerms,
		IsGuest:          account.IsGuest,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// GetBySubject gets an account by its external provider subject
func (r *AccountRepository) GetBySubject(ctx context.Context, subject string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("subject = ?", subject).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// GetByUsername gets an account by exact username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// UpdateProfile applies the non-nil profile fields and returns the updated row
func (r *AccountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}
	if input.HasAcceptedTerms != nil {
		updates["has_accepted_terms"] = *input.HasAcceptedTerms
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func accountToEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:               m.ID,
		Subject:          m.Subject,
		Username:         m.Username,
		ProfileImageURL:  m.ProfileImageURL,
		HasAcceptedTerms: m.HasAcceptedTerms,
		IsGuest:          m.IsGuest,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// IdentityRepository implements linked email/wallet operations
type IdentityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Create attaches an email or wallet to an account
func (r *IdentityRepository) Create(ctx context.Context, identity *entities.LinkedIdentity) error {
	m := &models.LinkedIdentity{
		ID:          identity.ID,
		AccountID:   identity.AccountID,
		Type:        string(identity.Type),
		Value:       identity.Value,
		ChainType:   identity.ChainType,
		ClientType:  string(identity.ClientType),
		WalletIndex: identity.WalletIndex,
		VerifiedAt:  null.TimeFromPtr(identity.VerifiedAt),
		CreatedAt:   identity.CreatedAt,
		UpdatedAt:   identity.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a linked identity by ID
func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LinkedIdentity, error) {
	var m models.LinkedIdentity
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return identityToEntity(&m), nil
}

// ListByAccount lists all linked identities of an account
func (r *IdentityRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.LinkedIdentity, error) {
	var ms []models.LinkedIdentity
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("type ASC, wallet_index ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	identities := make([]*entities.LinkedIdentity, 0, len(ms))
	for _, m := range ms {
		model := m
		identities = append(identities, identityToEntity(&model))
	}
	return identities, nil
}

// CountByAccount counts the linked identities of an account
func (r *IdentityRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.LinkedIdentity{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Delete unlinks an identity
func (r *IdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.LinkedIdentity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// PrimaryWallet returns the custodial wallet when one exists, otherwise the
// lowest-index wallet.
func (r *IdentityRepository) PrimaryWallet(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	var m models.LinkedIdentity
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ? AND type = ?", accountID, string(entities.IdentityTypeWallet)).
		Order("CASE WHEN client_type = 'custodial' THEN 0 ELSE 1 END, wallet_index ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return identityToEntity(&m), nil
}

// PrimaryEmail returns the oldest linked email
func (r *IdentityRepository) PrimaryEmail(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	var m models.LinkedIdentity
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ? AND type = ?", accountID, string(entities.IdentityTypeEmail)).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return identityToEntity(&m), nil
}

func identityToEntity(m *models.LinkedIdentity) *entities.LinkedIdentity {
	return &entities.LinkedIdentity{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Type:        entities.IdentityType(m.Type),
		Value:       m.Value,
		ChainType:   m.ChainType,
		ClientType:  entities.WalletClientType(m.ClientType),
		WalletIndex: m.WalletIndex,
		VerifiedAt:  m.VerifiedAt.Ptr(),
		CreatedAt:   m.CreatedAt,
	}
}

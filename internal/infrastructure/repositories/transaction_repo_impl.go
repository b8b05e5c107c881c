package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/infrastructure/models"
)

// TransactionRepositoryImpl implements TransactionRepository
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:              tx.ID,
		FromAccountID:   tx.FromAccountID,
		ToAccountID:     tx.ToAccountID,
		FromAddress:     tx.FromAddress,
		ToAddress:       tx.ToAddress,
		Amount:          tx.Amount,
		TokenAddress:    tx.TokenAddress,
		TokenName:       tx.TokenName,
		Decimals:        tx.Decimals,
		TxHash:          tx.TxHash,
		TransactionType: tx.TransactionType,
		ChainID:         tx.ChainID,
		ChainName:       tx.ChainName,
		CreatedAt:       tx.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByParticipant returns the most recent rows where the account is sender
// or recipient.
func (r *TransactionRepositoryImpl) ListByParticipant(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("from_account_id = ? OR to_account_id = ?", accountID, accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	txs := make([]*entities.Transaction, 0, len(ms))
	for _, m := range ms {
		model := m
		txs = append(txs, transactionToEntity(&model))
	}
	return txs, nil
}

// ListUnverified returns the oldest rows without a receipt stamp
func (r *TransactionRepositoryImpl) ListUnverified(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("verified_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	txs := make([]*entities.Transaction, 0, len(ms))
	for _, m := range ms {
		model := m
		txs = append(txs, transactionToEntity(&model))
	}
	return txs, nil
}

// MarkVerified stamps a row once its receipt was observed on chain
func (r *TransactionRepositoryImpl) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND verified_at IS NULL", id).
		Update("verified_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:              m.ID,
		FromAccountID:   m.FromAccountID,
		ToAccountID:     m.ToAccountID,
		FromAddress:     m.FromAddress,
		ToAddress:       m.ToAddress,
		Amount:          m.Amount,
		TokenAddress:    m.TokenAddress,
		TokenName:       m.TokenName,
		Decimals:        m.Decimals,
		TxHash:          m.TxHash,
		TransactionType: m.TransactionType,
		ChainID:         m.ChainID,
		ChainName:       m.ChainName,
		VerifiedAt:      m.VerifiedAt.Ptr(),
		CreatedAt:       m.CreatedAt,
	}
}

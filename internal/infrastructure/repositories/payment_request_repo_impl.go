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

// PaymentRequestRepositoryImpl implements PaymentRequestRepository
type PaymentRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRequestRepository(db *gorm.DB) *PaymentRequestRepositoryImpl {
	return &PaymentRequestRepositoryImpl{db: db}
}

func (r *PaymentRequestRepositoryImpl) Create(ctx context.Context, req *entities.PaymentRequest) error {
	now := time.Now()
	m := &models.PaymentRequest{
		ID:              req.ID,
		RequesterID:     req.RequesterID,
		PayeeID:         req.PayeeID,
		Amount:          req.Amount,
		TokenAddress:    req.TokenAddress,
		TokenName:       req.TokenName,
		Decimals:        req.Decimals,
		ChainID:         req.ChainID,
		ChainName:       req.ChainName,
		TransactionType: req.TransactionType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

type paymentRequestRow struct {
	models.PaymentRequest
	RequesterUsername string
	RequesterImageURL string
	RequesterAddress  string
}

const requestDetailSelect = `
	SELECT pr.*,
	       a.username AS requester_username,
	       a.profile_image_url AS requester_image_url,
	       COALESCE((SELECT w.value FROM linked_identities w
	                 WHERE w.account_id = pr.requester_id AND w.type = 'wallet' AND w.deleted_at IS NULL
	                 ORDER BY CASE WHEN w.client_type = 'custodial' THEN 0 ELSE 1 END, w.wallet_index ASC
	                 LIMIT 1), '') AS requester_address
	FROM payment_requests pr
	JOIN accounts a ON a.id = pr.requester_id`

// GetForPayee returns the request only when payeeID owns it. Anyone else gets
// not-found, so request ids cannot be probed for other users' activity.
func (r *PaymentRequestRepositoryImpl) GetForPayee(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error) {
	var row paymentRequestRow
	result := GetDB(ctx, r.db).WithContext(ctx).
		Raw(requestDetailSelect+` WHERE pr.id = ? AND pr.payee_id = ?`, id, payeeID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return rowToDetail(&row), nil
}

// ListPending returns the payee's open requests, newest first, each enriched
// with the requester's wallet address.
func (r *PaymentRequestRepositoryImpl) ListPending(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error) {
	var rows []paymentRequestRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Raw(requestDetailSelect+` WHERE pr.payee_id = ? AND pr.cleared = ? AND pr.rejected = ?
			ORDER BY pr.created_at DESC`, payeeID, false, false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	details := make([]*entities.PaymentRequestDetail, 0, len(rows))
	for _, row := range rows {
		model := row
		details = append(details, rowToDetail(&model))
	}
	return details, nil
}

// Clear marks the request fulfilled. The update is conditioned on the pending
// state; (false, nil) means the row was already terminal.
func (r *PaymentRequestRepositoryImpl) Clear(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	return r.finalize(ctx, id, payeeID, "cleared")
}

// Reject marks the request declined, with the same pending-state guard.
func (r *PaymentRequestRepositoryImpl) Reject(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	return r.finalize(ctx, id, payeeID, "rejected")
}

func (r *PaymentRequestRepositoryImpl) finalize(ctx context.Context, id, payeeID uuid.UUID, column string) (bool, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.PaymentRequest{}).
		Where("id = ? AND payee_id = ? AND cleared = ? AND rejected = ?", id, payeeID, false, false).
		Updates(map[string]interface{}{
			column:       true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// No transition happened. Distinguish an already-terminal row (idempotent
	// no-op) from a row the caller cannot see.
	var count int64
	if err := db.Model(&models.PaymentRequest{}).
		Where("id = ? AND payee_id = ?", id, payeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, domainerrors.ErrNotFound
	}
	return false, nil
}

func rowToDetail(row *paymentRequestRow) *entities.PaymentRequestDetail {
	return &entities.PaymentRequestDetail{
		PaymentRequest: entities.PaymentRequest{
			ID:              row.ID,
			RequesterID:     row.RequesterID,
			PayeeID:         row.PayeeID,
			Amount:          row.Amount,
			TokenAddress:    row.TokenAddress,
			TokenName:       row.TokenName,
			Decimals:        row.Decimals,
			ChainID:         row.ChainID,
			ChainName:       row.ChainName,
			TransactionType: row.TransactionType,
			Cleared:         row.Cleared,
			Rejected:        row.Rejected,
			RequestedAt:     row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		},
		RequesterUsername: row.RequesterUsername,
		RequesterImageURL: row.RequesterImageURL,
		RequesterAddress:  row.RequesterAddress,
	}
}

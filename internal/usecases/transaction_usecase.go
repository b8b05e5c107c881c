package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/infrastructure/blockchain"
	"pocketpay.backend/internal/metrics"
	"pocketpay.backend/pkg/utils"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// TransactionUsecase handles the transfer ledger. Records are written after
// the chain accepted the transaction; the backend never signs or submits
// anything itself.
type TransactionUsecase struct {
	txRepo      repositories.TransactionRepository
	requestRepo repositories.PaymentRequestRepository
	accountRepo repositories.AccountRepository
	uow         repositories.UnitOfWork
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	txRepo repositories.TransactionRepository,
	requestRepo repositories.PaymentRequestRepository,
	accountRepo repositories.AccountRepository,
	uow repositories.UnitOfWork,
) *TransactionUsecase {
	return &TransactionUsecase{
		txRepo:      txRepo,
		requestRepo: requestRepo,
		accountRepo: accountRepo,
		uow:         uow,
	}
}

// Record appends a transfer to the ledger. When the input references a
// payment request, the request is cleared in the same database transaction so
// the ledger row and the settlement cannot diverge.
func (u *TransactionUsecase) Record(ctx context.Context, fromAccountID uuid.UUID, input *entities.RecordTransactionInput) (*entities.Transaction, error) {
	toAccountID, err := uuid.Parse(input.ToAccountID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid recipient account id")
	}
	if !blockchain.IsValidAddress(input.FromAddress) {
		return nil, domainerrors.BadRequest("invalid from address")
	}
	if !blockchain.IsValidAddress(input.ToAddress) {
		return nil, domainerrors.BadRequest("invalid to address")
	}
	if !blockchain.IsValidTxHash(input.TxHash) {
		return nil, domainerrors.BadRequest("invalid transaction hash")
	}
	if !isAmountString(input.Amount) {
		return nil, domainerrors.BadRequest("amount must be a positive integer string")
	}

	if _, err := u.accountRepo.GetByID(ctx, toAccountID); err != nil {
		return nil, err
	}

	var requestID *uuid.UUID
	if input.PaymentRequestID != "" {
		parsed, err := uuid.Parse(input.PaymentRequestID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid payment request id")
		}
		requestID = &parsed
	}

	tx := &entities.Transaction{
		ID:              utils.GenerateUUIDv7(),
		FromAccountID:   fromAccountID,
		ToAccountID:     toAccountID,
		FromAddress:     input.FromAddress,
		ToAddress:       input.ToAddress,
		Amount:          input.Amount,
		TokenAddress:    input.TokenAddress,
		TokenName:       input.TokenName,
		Decimals:        input.Decimals,
		TxHash:          input.TxHash,
		TransactionType: input.TransactionType,
		ChainID:         input.ChainID,
		ChainName:       input.ChainName,
		CreatedAt:       time.Now(),
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if requestID != nil {
			// Only the payer of the referenced request can settle it.
			moved, err := u.requestRepo.Clear(ctx, *requestID, fromAccountID)
			if err != nil {
				return err
			}
			if !moved {
				return domainerrors.ErrRequestFinalized
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TransfersRecorded.WithLabelValues(tx.ChainName, tx.TokenName).Inc()
	if requestID != nil {
		metrics.PaymentRequestTransitions.WithLabelValues("cleared").Inc()
	}
	return tx, nil
}

// List returns transfers where the account is sender or receiver, newest
// first. A zero limit falls back to the default; oversized limits are capped.
func (u *TransactionUsecase) List(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return u.txRepo.ListByParticipant(ctx, accountID, limit)
}

package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/metrics"
	"pocketpay.backend/pkg/utils"
)

// isAmountString reports whether s is a non-empty base-10 integer with no
// sign, separators or leading whitespace. Amounts stay opaque strings end to
// end and are never parsed into floats.
func isAmountString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PaymentRequestUsecase handles payment request business logic. A request may
// only target a payee who has added the requester as a contact, and only the
// payee can see or settle it.
type PaymentRequestUsecase struct {
	requestRepo repositories.PaymentRequestRepository
	friendRepo  repositories.FriendRepository
	accountRepo repositories.AccountRepository
}

// NewPaymentRequestUsecase creates a new payment request usecase
func NewPaymentRequestUsecase(
	requestRepo repositories.PaymentRequestRepository,
	friendRepo repositories.FriendRepository,
	accountRepo repositories.AccountRepository,
) *PaymentRequestUsecase {
	return &PaymentRequestUsecase{
		requestRepo: requestRepo,
		friendRepo:  friendRepo,
		accountRepo: accountRepo,
	}
}

// Create opens a pending request from the requester against the payee. The
// payee must have the requester in their contact list.
func (u *PaymentRequestUsecase) Create(ctx context.Context, requesterID uuid.UUID, input *entities.CreatePaymentRequestInput) (*entities.PaymentRequest, error) {
	payeeID, err := uuid.Parse(input.PayeeID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid payee id")
	}
	if payeeID == requesterID {
		return nil, domainerrors.BadRequest("cannot request money from yourself")
	}
	if !isAmountString(input.Amount) {
		return nil, domainerrors.BadRequest("amount must be a positive integer string")
	}

	if _, err := u.accountRepo.GetByID(ctx, payeeID); err != nil {
		return nil, err
	}

	allowed, err := u.friendRepo.Exists(ctx, payeeID, requesterID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerrors.ErrNotFriends
	}

	now := time.Now()
	request := &entities.PaymentRequest{
		ID:              utils.GenerateUUIDv7(),
		RequesterID:     requesterID,
		PayeeID:         payeeID,
		Amount:          input.Amount,
		TokenAddress:    input.TokenAddress,
		TokenName:       input.TokenName,
		Decimals:        input.Decimals,
		ChainID:         input.ChainID,
		ChainName:       input.ChainName,
		TransactionType: input.TransactionType,
		RequestedAt:     now,
		UpdatedAt:       now,
	}
	if err := u.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.PaymentRequestsCreated.WithLabelValues(request.ChainName).Inc()
	return request, nil
}

// Get returns a single request for the payee
func (u *PaymentRequestUsecase) Get(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error) {
	return u.requestRepo.GetForPayee(ctx, id, payeeID)
}

// ListPending returns the payee's open requests, newest first
func (u *PaymentRequestUsecase) ListPending(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error) {
	return u.requestRepo.ListPending(ctx, payeeID)
}

// Reject moves a pending request to the rejected terminal state. A repeated
// reject is a no-op; rejecting a cleared request fails with a conflict.
func (u *PaymentRequestUsecase) Reject(ctx context.Context, id, payeeID uuid.UUID) error {
	moved, err := u.requestRepo.Reject(ctx, id, payeeID)
	if err != nil {
		return err
	}
	if !moved {
		return u.terminalOutcome(ctx, id, payeeID, entities.PaymentRequestStatusRejected)
	}
	metrics.PaymentRequestTransitions.WithLabelValues("rejected").Inc()
	return nil
}

// Clear moves a pending request to the cleared terminal state. A repeated
// clear is a no-op; clearing a rejected request fails with a conflict.
func (u *PaymentRequestUsecase) Clear(ctx context.Context, id, payeeID uuid.UUID) error {
	moved, err := u.requestRepo.Clear(ctx, id, payeeID)
	if err != nil {
		return err
	}
	if !moved {
		return u.terminalOutcome(ctx, id, payeeID, entities.PaymentRequestStatusCleared)
	}
	metrics.PaymentRequestTransitions.WithLabelValues("cleared").Inc()
	return nil
}

// terminalOutcome inspects a request whose conditional update affected zero
// rows. Already being in the target state is idempotent success; being in the
// other terminal state is a conflict. Terminal flags never flip.
func (u *PaymentRequestUsecase) terminalOutcome(ctx context.Context, id, payeeID uuid.UUID, target entities.PaymentRequestStatus) error {
	request, err := u.requestRepo.GetForPayee(ctx, id, payeeID)
	if err != nil {
		return err
	}
	if request.Status() == target {
		return nil
	}
	return domainerrors.ErrRequestFinalized
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
)

// PaymentRequestRepository interface
type PaymentRequestRepository interface {
	Create(ctx context.Context, request *entities.PaymentRequest) error
	// GetForPayee returns the request only when payeeID owns it; the row is
	// invisible to anyone else.
	GetForPayee(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error)
	ListPending(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error)
	// Clear and Reject are conditional updates guarded on the pending state.
	// They return (false, nil) when the row was already terminal.
	Clear(ctx context.Context, id, payeeID uuid.UUID) (bool, error)
	Reject(ctx context.Context, id, payeeID uuid.UUID) (bool, error)
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRequestStatus represents the lifecycle state of a payment request
type PaymentRequestStatus string

const (
	PaymentRequestStatusPending  PaymentRequestStatus = "pending"
	PaymentRequestStatusCleared  PaymentRequestStatus = "cleared"
	PaymentRequestStatusRejected PaymentRequestStatus = "rejected"
)

// PaymentRequest is a pending ask for funds from the requester against the
// payee. Cleared and rejected are terminal and mutually exclusive; only the
// payee may move a request out of pending.
type PaymentRequest struct {
	ID              uuid.UUID `json:"id"`
	RequesterID     uuid.UUID `json:"requesterId"`
	PayeeID         uuid.UUID `json:"payeeId"`
	Amount          string    `json:"amount"` // integer string, smallest unit
	TokenAddress    string    `json:"tokenAddress"`
	TokenName       string    `json:"tokenName"`
	Decimals        int       `json:"decimals"`
	ChainID         int64     `json:"chainId"`
	ChainName       string    `json:"chainName"`
	TransactionType string    `json:"transactionType"`
	Cleared         bool      `json:"cleared"`
	Rejected        bool      `json:"rejected"`
	RequestedAt     time.Time `json:"requestedAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Status derives the lifecycle state from the terminal flags
func (r *PaymentRequest) Status() PaymentRequestStatus {
	switch {
	case r.Cleared:
		return PaymentRequestStatusCleared
	case r.Rejected:
		return PaymentRequestStatusRejected
	default:
		return PaymentRequestStatusPending
	}
}

// PaymentRequestDetail is a payee-facing view enriched with requester info
type PaymentRequestDetail struct {
	PaymentRequest
	RequesterUsername string `json:"requesterUsername"`
	RequesterImageURL string `json:"requesterImageUrl,omitempty"`
	RequesterAddress  string `json:"requesterAddress,omitempty"`
}

// CreatePaymentRequestInput represents input for creating a payment request.
// Amount is an opaque decimal-string integer and is never parsed into a float.
type CreatePaymentRequestInput struct {
	PayeeID         string `json:"payeeId" binding:"required,uuid"`
	Amount          string `json:"amount" binding:"required"`
	TokenAddress    string `json:"tokenAddress" binding:"required"`
	TokenName       string `json:"tokenName" binding:"required"`
	Decimals        int    `json:"decimals" binding:"required"`
	ChainID         int64  `json:"chainId" binding:"required"`
	ChainName       string `json:"chainName" binding:"required"`
	TransactionType string `json:"transactionType"`
}

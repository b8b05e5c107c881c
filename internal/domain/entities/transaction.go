package entities

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an append-only record of an executed on-chain transfer. The
// row is written after the chain accepted the transaction; the client holds
// the hash before calling the record endpoint. VerifiedAt is set later by the
// receipt-verification job, never by the write path.
type Transaction struct {
	ID              uuid.UUID  `json:"id"`
	FromAccountID   uuid.UUID  `json:"fromAccountId"`
	ToAccountID     uuid.UUID  `json:"toAccountId"`
	FromAddress     string     `json:"fromAddress"`
	ToAddress       string     `json:"toAddress"`
	Amount          string     `json:"amount"` // integer string, smallest unit
	TokenAddress    string     `json:"tokenAddress"`
	TokenName       string     `json:"tokenName"`
	Decimals        int        `json:"decimals"`
	TxHash          string     `json:"tx"`
	TransactionType string     `json:"transactionType"`
	ChainID         int64      `json:"chainId"`
	ChainName       string     `json:"chainName"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// RecordTransactionInput represents input for the record-transfer endpoint
type RecordTransactionInput struct {
	ToAccountID     string `json:"toAccountId" binding:"required,uuid"`
	FromAddress     string `json:"fromAddress" binding:"required"`
	ToAddress       string `json:"toAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	TokenAddress    string `json:"tokenAddress" binding:"required"`
	TokenName       string `json:"tokenName" binding:"required"`
	Decimals        int    `json:"decimals" binding:"required"`
	TxHash          string `json:"tx" binding:"required"`
	TransactionType string `json:"transactionType"`
	ChainID         int64  `json:"chainId" binding:"required"`
	ChainName       string `json:"chainName" binding:"required"`
	// When set, the referenced request is cleared in the same database
	// transaction as the history write.
	PaymentRequestID string `json:"paymentRequestId" binding:"omitempty,uuid"`
}

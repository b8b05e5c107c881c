package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FromAccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ToAccountID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FromAddress     string    `gorm:"type:varchar(255);not null"`
	ToAddress       string    `gorm:"type:varchar(255);not null"`
	Amount          string    `gorm:"type:varchar(100);not null"`
	TokenAddress    string    `gorm:"type:varchar(255);not null"`
	TokenName       string    `gorm:"type:varchar(100);not null"`
	Decimals        int       `gorm:"not null"`
	TxHash          string    `gorm:"column:tx_hash;type:varchar(255);not null;index"`
	TransactionType string    `gorm:"type:varchar(50)"`
	ChainID         int64     `gorm:"not null"`
	ChainName       string    `gorm:"type:varchar(100);not null"`
	VerifiedAt      null.Time
	CreatedAt       time.Time `gorm:"index"`
}

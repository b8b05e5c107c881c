package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RequesterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PayeeID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount          string    `gorm:"type:varchar(100);not null"`
	TokenAddress    string    `gorm:"type:varchar(255);not null"`
	TokenName       string    `gorm:"type:varchar(100);not null"`
	Decimals        int       `gorm:"not null"`
	ChainID         int64     `gorm:"not null"`
	ChainName       string    `gorm:"type:varchar(100);not null"`
	TransactionType string    `gorm:"type:varchar(50)"`
	Cleared         bool      `gorm:"not null;default:false;index"`
	Rejected        bool      `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

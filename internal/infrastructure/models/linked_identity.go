package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type LinkedIdentity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Value       string    `gorm:"type:varchar(255);not null;index"`
	ChainType   string    `gorm:"type:varchar(50)"`
	ClientType  string    `gorm:"type:varchar(20)"`
	WalletIndex int       `gorm:"default:0"`
	VerifiedAt  null.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Account Account `gorm:"foreignKey:AccountID"`
}

func (LinkedIdentity) TableName() string {
	return "linked_identities"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Chain struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ChainID int64     `gorm:"uniqueIndex;not null"`
	Name    string    `gorm:"type:varchar(100);not null"`
	RPCURL  string    `gorm:"column:rpc_url;type:text"`
	// null.Bool: a plain false would be dropped as a zero value on Create
	// and the column default true would win.
	IsActive  null.Bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Token struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ChainID         int64     `gorm:"not null;index:idx_tokens_symbol_chain,unique"`
	Symbol          string    `gorm:"type:varchar(20);not null;index:idx_tokens_symbol_chain,unique"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Decimals        int       `gorm:"not null"`
	ContractAddress string    `gorm:"type:varchar(255);not null"`
	IsNative        bool      `gorm:"default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Subject          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username         string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	ProfileImageURL  string    `gorm:"type:text"`
	HasAcceptedTerms bool      `gorm:"default:false"`
	IsGuest          bool      `gorm:"default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

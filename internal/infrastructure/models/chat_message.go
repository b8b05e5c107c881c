package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SenderID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Content          string     `gorm:"type:text"`
	Amount           string     `gorm:"type:varchar(100);not null;default:'0'"`
	MessageType      string     `gorm:"type:varchar(20);not null;default:'message'"`
	TransactionID    *uuid.UUID `gorm:"type:uuid"`
	PaymentRequestID *uuid.UUID `gorm:"type:uuid"`
	SentAt           time.Time  `gorm:"index"`
}

type AiChatMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionName string    `gorm:"type:varchar(35);not null"`
	Role        string    `gorm:"type:varchar(20);not null"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index"`
}

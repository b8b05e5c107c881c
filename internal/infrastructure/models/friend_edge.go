package models

import (
	"time"

	"github.com/google/uuid"
)

type FriendEdge struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FriendID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

func (FriendEdge) TableName() string {
	return "friend_edges"
}

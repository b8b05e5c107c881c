package entities

import (
	"time"

	"github.com/google/uuid"
)

// FriendEdge is a directional "has added as contact" relationship. A payment
// request from A to B is only allowed when the edge (B -> A) exists, so the
// payee controls who may ask them for money.
type FriendEdge struct {
	AccountID uuid.UUID `json:"accountId"`
	FriendID  uuid.UUID `json:"friendId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contact is a friend-list row joined with the friend's primary email and
// custodial wallet address.
type Contact struct {
	AccountID       uuid.UUID `json:"accountId"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Email           string    `json:"email,omitempty"`
	WalletAddress   string    `json:"walletAddress,omitempty"`
	AddedAt         time.Time `json:"addedAt"`
}

// DirectoryEntry is a contact-search result annotated with friendship status
// relative to the caller.
type DirectoryEntry struct {
	AccountID       uuid.UUID `json:"accountId"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Email           string    `json:"email,omitempty"`
	WalletAddress   string    `json:"walletAddress,omitempty"`
	IsFriend        bool      `json:"isFriend"`
}

// AddFriendInput represents input for adding a friend edge
type AddFriendInput struct {
	FriendID string `json:"friendId" binding:"required,uuid"`
}

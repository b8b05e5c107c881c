package entities

import (
	"time"

	"github.com/google/uuid"
)

// IdentityType tags a linked identity record
type IdentityType string

const (
	IdentityTypeEmail  IdentityType = "email"
	IdentityTypeWallet IdentityType = "wallet"
)

// WalletClientType distinguishes provider-managed wallets from user-supplied ones
type WalletClientType string

const (
	WalletClientCustodial WalletClientType = "custodial"
	WalletClientExternal  WalletClientType = "external"
)

// Account represents an application account. The Subject is the stable user id
// issued by the external auth provider; it never changes across sessions.
type Account struct {
	ID               uuid.UUID  `json:"id"`
	Subject          string     `json:"subject"`
	Username         string     `json:"username"`
	ProfileImageURL  string     `json:"profileImageUrl,omitempty"`
	HasAcceptedTerms bool       `json:"hasAcceptedTerms"`
	IsGuest          bool       `json:"isGuest"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"-"`
}

// LinkedIdentity is an email or wallet attached to an account. Wallets carry
// chain/client metadata and an ordinal index so an account can hold several.
type LinkedIdentity struct {
	ID          uuid.UUID        `json:"id"`
	AccountID   uuid.UUID        `json:"accountId"`
	Type        IdentityType     `json:"type"`
	Value       string           `json:"value"` // email address or wallet address
	ChainType   string           `json:"chainType,omitempty"`
	ClientType  WalletClientType `json:"clientType,omitempty"`
	WalletIndex int              `json:"walletIndex"`
	VerifiedAt  *time.Time       `json:"verifiedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// LoginInput carries the external provider token for the bootstrap endpoint
type LoginInput struct {
	ProviderToken string `json:"providerToken"`
	Email         string `json:"email"`
	WalletAddress string `json:"walletAddress"`
	ChainType     string `json:"chainType"`
	IsGuest       bool   `json:"isGuest"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string   `json:"accessToken,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	SessionID    string   `json:"sessionId,omitempty"`
	Account      *Account `json:"account"`
}

// UpdateProfileInput represents input for profile edits
type UpdateProfileInput struct {
	Username         *string `json:"username" binding:"omitempty,min=2,max=30"`
	ProfileImageURL  *string `json:"profileImageUrl"`
	HasAcceptedTerms *bool   `json:"hasAcceptedTerms"`
}

// LinkIdentityInput represents input for attaching an email or wallet
type LinkIdentityInput struct {
	Type       string `json:"type" binding:"required,oneof=email wallet"`
	Value      string `json:"value" binding:"required"`
	ChainType  string `json:"chainType"`
	ClientType string `json:"clientType" binding:"omitempty,oneof=custodial external"`
}

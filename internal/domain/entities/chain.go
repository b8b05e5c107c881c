package entities

import (
	"time"

	"github.com/google/uuid"
)

// Chain represents a supported EVM network
type Chain struct {
	ID        uuid.UUID `json:"id"`
	ChainID   int64     `json:"chainId"`
	Name      string    `json:"name"`
	RPCURL    string    `json:"rpcUrl,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Token represents a registered token on a chain. Native assets use the zero
// contract address.
type Token struct {
	ID              uuid.UUID `json:"id"`
	ChainID         int64     `json:"chainId"`
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	Decimals        int       `json:"decimals"`
	ContractAddress string    `json:"contractAddress"`
	IsNative        bool      `json:"isNative"`
	CreatedAt       time.Time `json:"createdAt"`
}

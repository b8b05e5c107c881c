package repositories

import (
	"context"

	"pocketpay.backend/internal/domain/entities"
)

// ChainRepository defines chain registry operations
type ChainRepository interface {
	Create(ctx context.Context, chain *entities.Chain) error
	GetByChainID(ctx context.Context, chainID int64) (*entities.Chain, error)
	List(ctx context.Context) ([]*entities.Chain, error)
}

// TokenRepository defines token registry operations
type TokenRepository interface {
	Create(ctx context.Context, token *entities.Token) error
	GetBySymbol(ctx context.Context, symbol string, chainID int64) (*entities.Token, error)
	List(ctx context.Context) ([]*entities.Token, error)
}

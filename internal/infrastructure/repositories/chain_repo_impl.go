package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/infrastructure/models"
)

// ChainRepositoryImpl implements ChainRepository
type ChainRepositoryImpl struct {
	db *gorm.DB
}

func NewChainRepository(db *gorm.DB) *ChainRepositoryImpl {
	return &ChainRepositoryImpl{db: db}
}

// Create registers a chain; re-seeding an existing chain id is a no-op
func (r *ChainRepositoryImpl) Create(ctx context.Context, chain *entities.Chain) error {
	now := time.Now()
	m := &models.Chain{
		ID:        chain.ID,
		ChainID:   chain.ChainID,
		Name:      chain.Name,
		RPCURL:    chain.RPCURL,
		IsActive:  null.BoolFrom(chain.IsActive),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

func (r *ChainRepositoryImpl) GetByChainID(ctx context.Context, chainID int64) (*entities.Chain, error) {
	var m models.Chain
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("chain_id = ? AND is_active = ?", chainID, true).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return chainToEntity(&m), nil
}

func (r *ChainRepositoryImpl) List(ctx context.Context) ([]*entities.Chain, error) {
	var ms []models.Chain
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ?", true).
		Order("chain_id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	chains := make([]*entities.Chain, 0, len(ms))
	for _, m := range ms {
		model := m
		chains = append(chains, chainToEntity(&model))
	}
	return chains, nil
}

func chainToEntity(m *models.Chain) *entities.Chain {
	return &entities.Chain{
		ID:        m.ID,
		ChainID:   m.ChainID,
		Name:      m.Name,
		RPCURL:    m.RPCURL,
		IsActive:  m.IsActive.Bool,
		CreatedAt: m.CreatedAt,
	}
}

// TokenRepositoryImpl implements TokenRepository
type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepositoryImpl {
	return &TokenRepositoryImpl{db: db}
}

// Create registers a token; re-seeding an existing symbol/chain pair is a no-op
func (r *TokenRepositoryImpl) Create(ctx context.Context, token *entities.Token) error {
	now := time.Now()
	m := &models.Token{
		ID:              token.ID,
		ChainID:         token.ChainID,
		Symbol:          strings.ToUpper(token.Symbol),
		Name:            token.Name,
		Decimals:        token.Decimals,
		ContractAddress: token.ContractAddress,
		IsNative:        token.IsNative,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// GetBySymbol looks up a token by symbol on a chain, case-insensitively
func (r *TokenRepositoryImpl) GetBySymbol(ctx context.Context, symbol string, chainID int64) (*entities.Token, error) {
	var m models.Token
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("symbol = ? AND chain_id = ?", strings.ToUpper(symbol), chainID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

func (r *TokenRepositoryImpl) List(ctx context.Context) ([]*entities.Token, error) {
	var ms []models.Token
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("chain_id ASC, symbol ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	tokens := make([]*entities.Token, 0, len(ms))
	for _, m := range ms {
		model := m
		tokens = append(tokens, tokenToEntity(&model))
	}
	return tokens, nil
}

func tokenToEntity(m *models.Token) *entities.Token {
	return &entities.Token{
		ID:              m.ID,
		ChainID:         m.ChainID,
		Symbol:          m.Symbol,
		Name:            m.Name,
		Decimals:        m.Decimals,
		ContractAddress: m.ContractAddress,
		IsNative:        m.IsNative,
		CreatedAt:       m.CreatedAt,
	}
}

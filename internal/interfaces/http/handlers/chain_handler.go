package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/interfaces/http/response"
)

// ChainHandler serves the public chain and token registries
type ChainHandler struct {
	chainRepo repositories.ChainRepository
	tokenRepo repositories.TokenRepository
}

// NewChainHandler creates a new chain handler
func NewChainHandler(chainRepo repositories.ChainRepository, tokenRepo repositories.TokenRepository) *ChainHandler {
	return &ChainHandler{
		chainRepo: chainRepo,
		tokenRepo: tokenRepo,
	}
}

// ListChains returns the active chains
// GET /api/v1/chains
func (h *ChainHandler) ListChains(c *gin.Context) {
	chains, err := h.chainRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"chains": chains})
}

// ListTokens returns the registered tokens across chains
// GET /api/v1/tokens
func (h *ChainHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tokens": tokens})
}

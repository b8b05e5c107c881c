package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/internal/interfaces/http/response"
	"pocketpay.backend/internal/usecases"
)

// AccountHandler handles profile and linked-identity endpoints
type AccountHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUsecase *usecases.AccountUsecase) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
	}
}

// GetProfile returns the caller's account with linked identities
// GET /api/v1/accounts/me
func (h *AccountHandler) GetProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	account, identities, err := h.accountUsecase.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"account":    account,
		"identities": identities,
	})
}

// UpdateProfile applies partial profile edits
// PATCH /api/v1/accounts/me
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, err := h.accountUsecase.UpdateProfile(c.Request.Context(), accountID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, account)
}

// LinkIdentity attaches an email or wallet to the caller's account
// POST /api/v1/accounts/me/identities
func (h *AccountHandler) LinkIdentity(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.LinkIdentityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, err := h.accountUsecase.LinkIdentity(c.Request.Context(), accountID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, identity)
}

// UnlinkIdentity detaches an identity from the caller's account
// DELETE /api/v1/accounts/me/identities/:id
func (h *AccountHandler) UnlinkIdentity(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	identityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid identity id"))
		return
	}

	if err := h.accountUsecase.UnlinkIdentity(c.Request.Context(), accountID, identityID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "identity removed"})
}

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

// FriendHandler handles contact-list and directory-search endpoints
type FriendHandler struct {
	friendUsecase *usecases.FriendUsecase
	searchUsecase *usecases.ContactSearchUsecase
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendUsecase *usecases.FriendUsecase, searchUsecase *usecases.ContactSearchUsecase) *FriendHandler {
	return &FriendHandler{
		friendUsecase: friendUsecase,
		searchUsecase: searchUsecase,
	}
}

// Add puts another account on the caller's contact list
// POST /api/v1/contacts/friends
func (h *FriendHandler) Add(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AddFriendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	friendID, err := uuid.Parse(input.FriendID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid friend id"))
		return
	}

	if err := h.friendUsecase.Add(c.Request.Context(), accountID, friendID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "friend added"})
}

// Remove takes an account off the caller's contact list
// DELETE /api/v1/contacts/friends/:id
func (h *FriendHandler) Remove(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid friend id"))
		return
	}

	if err := h.friendUsecase.Remove(c.Request.Context(), accountID, friendID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "friend removed"})
}

// List returns the caller's contacts
// GET /api/v1/contacts/friends
func (h *FriendHandler) List(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	contacts, err := h.friendUsecase.List(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"friends": contacts})
}

// Search runs a prefix search over wallet addresses and emails
// GET /api/v1/contacts/search?q=
func (h *FriendHandler) Search(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	results, err := h.searchUsecase.Search(c.Request.Context(), accountID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

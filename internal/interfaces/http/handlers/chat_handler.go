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

// ChatHandler handles direct messaging endpoints
type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase *usecases.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// Send stores a direct message from the caller
// POST /api/v1/contacts/chat
func (h *ChatHandler) Send(c *gin.Context) {
	senderID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	msg, err := h.chatUsecase.Send(c.Request.Context(), senderID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, msg)
}

// History returns the merged conversation for a pair. The caller must be one
// of the two participants; the sender parameter defaults to the caller.
// GET /api/v1/contacts/chat?sender=&receiver=
func (h *ChatHandler) History(c *gin.Context) {
	callerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	receiverID, err := uuid.Parse(c.Query("receiver"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("receiver is required"))
		return
	}

	senderID := callerID
	if raw := c.Query("sender"); raw != "" {
		senderID, err = uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid sender"))
			return
		}
	}
	if callerID != senderID && callerID != receiverID {
		response.Error(c, domainerrors.Forbidden("only a participant may read this conversation"))
		return
	}

	otherID := receiverID
	if callerID == receiverID {
		otherID = senderID
	}

	messages, err := h.chatUsecase.History(c.Request.Context(), callerID, otherID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

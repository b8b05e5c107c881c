package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/internal/interfaces/http/response"
	"pocketpay.backend/internal/usecases"
)

// AiChatHandler handles the payment assistant endpoints
type AiChatHandler struct {
	aiChatUsecase *usecases.AiChatUsecase
}

// NewAiChatHandler creates a new AI chat handler
func NewAiChatHandler(aiChatUsecase *usecases.AiChatUsecase) *AiChatHandler {
	return &AiChatHandler{
		aiChatUsecase: aiChatUsecase,
	}
}

type aiChatRequest struct {
	SessionID string `json:"sessionId" binding:"required,uuid"`
	Content   string `json:"content" binding:"required"`
}

// Chat runs one assistant round trip and streams events over SSE
// POST /api/v1/chat
func (h *AiChatHandler) Chat(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var req aiChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid session id"))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	emit := func(eventType, content string) {
		data, _ := json.Marshal(gin.H{"type": eventType, "content": content})
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		c.Writer.Flush()
	}

	if err := h.aiChatUsecase.Chat(c.Request.Context(), accountID, sessionID, req.Content, emit); err != nil {
		// headers are already out, the error goes down the stream
		emit("error", err.Error())
	}
}

// ListSessions returns the caller's assistant session index
// GET /api/v1/chat/sessions
func (h *AiChatHandler) ListSessions(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	sessions, err := h.aiChatUsecase.ListSessions(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

// Transcript returns the full message history of one session
// GET /api/v1/chat/sessions/:id
func (h *AiChatHandler) Transcript(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid session id"))
		return
	}

	messages, err := h.aiChatUsecase.Transcript(c.Request.Context(), accountID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

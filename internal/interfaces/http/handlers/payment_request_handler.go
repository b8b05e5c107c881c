package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/internal/interfaces/http/response"
	"pocketpay.backend/internal/usecases"
)

// PaymentRequestHandler handles payment request endpoints
type PaymentRequestHandler struct {
	requestUsecase *usecases.PaymentRequestUsecase
}

// NewPaymentRequestHandler creates a new payment request handler
func NewPaymentRequestHandler(requestUsecase *usecases.PaymentRequestUsecase) *PaymentRequestHandler {
	return &PaymentRequestHandler{
		requestUsecase: requestUsecase,
	}
}

// Create opens a pending payment request against the payee
// POST /api/v1/payment-requests
func (h *PaymentRequestHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreatePaymentRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.requestUsecase.Create(c.Request.Context(), requesterID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// ListPending returns the caller's open requests
// GET /api/v1/payment-requests/pending
func (h *PaymentRequestHandler) ListPending(c *gin.Context) {
	payeeID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	pending, err := h.requestUsecase.ListPending(c.Request.Context(), payeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": pending})
}

// Get returns one request, payee-only
// GET /api/v1/payment-requests/:id
func (h *PaymentRequestHandler) Get(c *gin.Context) {
	payeeID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	request, err := h.requestUsecase.Get(c.Request.Context(), id, payeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// Clear settles a pending request
// POST /api/v1/payment-requests/:id/clear
func (h *PaymentRequestHandler) Clear(c *gin.Context) {
	h.transition(c, h.requestUsecase.Clear, "request cleared")
}

// Reject declines a pending request
// POST /api/v1/payment-requests/:id/reject
func (h *PaymentRequestHandler) Reject(c *gin.Context) {
	h.transition(c, h.requestUsecase.Reject, "request rejected")
}

func (h *PaymentRequestHandler) transition(c *gin.Context, apply func(ctx context.Context, id, payeeID uuid.UUID) error, message string) {
	payeeID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	if err := apply(c.Request.Context(), id, payeeID); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}

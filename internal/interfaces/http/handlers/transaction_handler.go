package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/internal/interfaces/http/response"
	"pocketpay.backend/internal/usecases"
)

// TransactionHandler handles the transfer-ledger endpoints
type TransactionHandler struct {
	transactionUsecase *usecases.TransactionUsecase
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
	}
}

// Record appends an executed transfer to the ledger
// POST /api/v1/transactions
func (h *TransactionHandler) Record(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.RecordTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.transactionUsecase.Record(c.Request.Context(), accountID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tx)
}

// List returns the caller's transfer history, newest first
// GET /api/v1/transactions?limit=
func (h *TransactionHandler) List(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, domainerrors.BadRequest("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	transactions, err := h.transactionUsecase.List(c.Request.Context(), accountID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": transactions})
}

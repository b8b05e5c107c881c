package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/internal/metrics"
	"pocketpay.backend/pkg/utils"
)

// ChatUsecase handles direct messaging between accounts
type ChatUsecase struct {
	chatRepo    repositories.ChatRepository
	accountRepo repositories.AccountRepository
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(chatRepo repositories.ChatRepository, accountRepo repositories.AccountRepository) *ChatUsecase {
	return &ChatUsecase{
		chatRepo:    chatRepo,
		accountRepo: accountRepo,
	}
}

// Send stores a direct message. Payment and request messages carry a
// reference to the ledger row or payment request they narrate.
func (u *ChatUsecase) Send(ctx context.Context, senderID uuid.UUID, input *entities.SendMessageInput) (*entities.ChatMessage, error) {
	receiverID, err := uuid.Parse(input.ReceiverID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid receiver id")
	}
	if receiverID == senderID {
		return nil, domainerrors.BadRequest("cannot message yourself")
	}
	if _, err := u.accountRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	messageType := entities.MessageTypeText
	if input.MessageType != "" {
		messageType = entities.MessageType(input.MessageType)
	}

	amount := input.Amount
	if amount == "" {
		amount = "0"
	}
	if !isAmountString(amount) {
		return nil, domainerrors.BadRequest("amount must be a positive integer string")
	}

	if messageType == entities.MessageTypeText && input.Content == "" {
		return nil, domainerrors.BadRequest("message content is required")
	}

	msg := &entities.ChatMessage{
		ID:          utils.GenerateUUIDv7(),
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Content:     input.Content,
		Amount:      amount,
		MessageType: messageType,
		SentAt:      time.Now(),
	}
	if input.TransactionID != "" {
		parsed, err := uuid.Parse(input.TransactionID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid transaction reference")
		}
		msg.TransactionID = &parsed
	}
	if input.PaymentRequestID != "" {
		parsed, err := uuid.Parse(input.PaymentRequestID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid payment request reference")
		}
		msg.PaymentRequestID = &parsed
	}

	if err := u.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	metrics.ChatMessagesSent.WithLabelValues(string(messageType)).Inc()
	return msg, nil
}

// History returns the full conversation between the caller and the other
// account, oldest first. Either side sees the same merged view.
func (u *ChatUsecase) History(ctx context.Context, callerID, otherID uuid.UUID) ([]*entities.ChatMessage, error) {
	if _, err := u.accountRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}
	return u.chatRepo.ListBetween(ctx, callerID, otherID)
}

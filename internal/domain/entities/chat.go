package entities

import (
	"time"

	"github.com/google/uuid"
)

// MessageType tags a direct message
type MessageType string

const (
	MessageTypeText    MessageType = "message"
	MessageTypePayment MessageType = "payment"
	MessageTypeRequest MessageType = "request"
)

// ChatMessage is one direct message between two accounts. Messages are
// immutable after creation and ordered by SentAt for a given pair. Amount is
// "0" for plain text.
type ChatMessage struct {
	ID               uuid.UUID   `json:"id"`
	SenderID         uuid.UUID   `json:"sender"`
	ReceiverID       uuid.UUID   `json:"receiver"`
	Content          string      `json:"content,omitempty"`
	Amount           string      `json:"amount"`
	MessageType      MessageType `json:"messageType"`
	TransactionID    *uuid.UUID  `json:"transactionRef,omitempty"`
	PaymentRequestID *uuid.UUID  `json:"paymentRequestRef,omitempty"`
	SentAt           time.Time   `json:"sentAt"`
}

// SendMessageInput represents input for sending a direct message
type SendMessageInput struct {
	ReceiverID       string `json:"receiver" binding:"required,uuid"`
	Content          string `json:"content"`
	Amount           string `json:"amount"`
	MessageType      string `json:"messageType" binding:"omitempty,oneof=message payment request"`
	TransactionID    string `json:"transactionRef" binding:"omitempty,uuid"`
	PaymentRequestID string `json:"paymentRequestRef" binding:"omitempty,uuid"`
}

// AiChatMessage is one transcript row of an assistant session. Rows are
// append-only; the session itself exists only as the set of its rows.
type AiChatMessage struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"sessionId"`
	AccountID   uuid.UUID `json:"-"`
	SessionName string    `json:"sessionName"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"timestamp"`
}

// AiChatSession is one row of the session index: a session id with the most
// recent name and activity time.
type AiChatSession struct {
	SessionID   uuid.UUID `json:"sessionId"`
	SessionName string    `json:"sessionName"`
	LastActive  time.Time `json:"lastActive"`
}

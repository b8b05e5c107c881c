package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/infrastructure/models"
)

// ChatRepositoryImpl implements ChatRepository
type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepositoryImpl {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) Create(ctx context.Context, msg *entities.ChatMessage) error {
	m := &models.ChatMessage{
		ID:               msg.ID,
		SenderID:         msg.SenderID,
		ReceiverID:       msg.ReceiverID,
		Content:          msg.Content,
		Amount:           msg.Amount,
		MessageType:      string(msg.MessageType),
		TransactionID:    msg.TransactionID,
		PaymentRequestID: msg.PaymentRequestID,
		SentAt:           msg.SentAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListBetween returns the history of the unordered pair (a, b), ascending by
// sent time.
func (r *ChatRepositoryImpl) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error) {
	var ms []models.ChatMessage
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("sent_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	msgs := make([]*entities.ChatMessage, 0, len(ms))
	for _, m := range ms {
		model := m
		msgs = append(msgs, &entities.ChatMessage{
			ID:               model.ID,
			SenderID:         model.SenderID,
			ReceiverID:       model.ReceiverID,
			Content:          model.Content,
			Amount:           model.Amount,
			MessageType:      entities.MessageType(model.MessageType),
			TransactionID:    model.TransactionID,
			PaymentRequestID: model.PaymentRequestID,
			SentAt:           model.SentAt,
		})
	}
	return msgs, nil
}

// AiChatRepositoryImpl implements AiChatRepository
type AiChatRepositoryImpl struct {
	db *gorm.DB
}

func NewAiChatRepository(db *gorm.DB) *AiChatRepositoryImpl {
	return &AiChatRepositoryImpl{db: db}
}

func (r *AiChatRepositoryImpl) Append(ctx context.Context, msg *entities.AiChatMessage) error {
	m := &models.AiChatMessage{
		ID:          msg.ID,
		SessionID:   msg.SessionID,
		AccountID:   msg.AccountID,
		SessionName: msg.SessionName,
		Role:        msg.Role,
		Content:     msg.Content,
		CreatedAt:   msg.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListBySession returns one session's transcript in order. Scoping by account
// keeps other users' sessions invisible even with a guessed session id.
func (r *AiChatRepositoryImpl) ListBySession(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error) {
	var ms []models.AiChatMessage
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ? AND session_id = ?", accountID, sessionID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	msgs := make([]*entities.AiChatMessage, 0, len(ms))
	for _, m := range ms {
		model := m
		msgs = append(msgs, aiChatToEntity(&model))
	}
	return msgs, nil
}

// ListSessions builds the session index from the newest row of each session,
// most recently active first.
func (r *AiChatRepositoryImpl) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error) {
	var ms []models.AiChatMessage
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Select("session_id", "session_name", "created_at").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	sessions := make([]*entities.AiChatSession, 0)
	seen := make(map[uuid.UUID]bool)
	for _, m := range ms {
		if seen[m.SessionID] {
			continue
		}
		seen[m.SessionID] = true
		sessions = append(sessions, &entities.AiChatSession{
			SessionID:   m.SessionID,
			SessionName: m.SessionName,
			LastActive:  m.CreatedAt,
		})
	}
	return sessions, nil
}

func aiChatToEntity(m *models.AiChatMessage) *entities.AiChatMessage {
	return &entities.AiChatMessage{
		ID:          m.ID,
		SessionID:   m.SessionID,
		AccountID:   m.AccountID,
		SessionName: m.SessionName,
		Role:        m.Role,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/usecases"
)

func TestChatUsecase_Send_Text(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	senderID := uuid.New()
	receiverID := uuid.New()
	ar.On("GetByID", mock.Anything, receiverID).Return(&entities.Account{ID: receiverID}, nil).Once()
	cr.On("Create", mock.Anything, mock.AnythingOfType("*entities.ChatMessage")).Return(nil).Once()

	msg, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		ReceiverID: receiverID.String(),
		Content:    "hey, lunch?",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.MessageTypeText, msg.MessageType)
	assert.Equal(t, "0", msg.Amount)
	assert.Nil(t, msg.TransactionID)
}

func TestChatUsecase_Send_PaymentWithReference(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	senderID := uuid.New()
	receiverID := uuid.New()
	txID := uuid.New()
	ar.On("GetByID", mock.Anything, receiverID).Return(&entities.Account{ID: receiverID}, nil).Once()
	cr.On("Create", mock.Anything, mock.AnythingOfType("*entities.ChatMessage")).Return(nil).Once()

	msg, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		ReceiverID:    receiverID.String(),
		Amount:        "5000000",
		MessageType:   "payment",
		TransactionID: txID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.MessageTypePayment, msg.MessageType)
	require.NotNil(t, msg.TransactionID)
	assert.Equal(t, txID, *msg.TransactionID)
}

func TestChatUsecase_Send_SelfMessage(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	senderID := uuid.New()
	_, err := uc.Send(context.Background(), senderID, &entities.SendMessageInput{
		ReceiverID: senderID.String(),
		Content:    "hi me",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestChatUsecase_Send_EmptyTextMessage(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	receiverID := uuid.New()
	ar.On("GetByID", mock.Anything, receiverID).Return(&entities.Account{ID: receiverID}, nil).Once()

	_, err := uc.Send(context.Background(), uuid.New(), &entities.SendMessageInput{
		ReceiverID: receiverID.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	cr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChatUsecase_Send_BadAmount(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	receiverID := uuid.New()
	ar.On("GetByID", mock.Anything, receiverID).Return(&entities.Account{ID: receiverID}, nil).Once()

	_, err := uc.Send(context.Background(), uuid.New(), &entities.SendMessageInput{
		ReceiverID:  receiverID.String(),
		Amount:      "12.5",
		MessageType: "payment",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestChatUsecase_History(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	callerID := uuid.New()
	otherID := uuid.New()
	ar.On("GetByID", mock.Anything, otherID).Return(&entities.Account{ID: otherID}, nil).Once()
	cr.On("ListBetween", mock.Anything, callerID, otherID).Return([]*entities.ChatMessage{
		{ID: uuid.New(), SenderID: callerID, ReceiverID: otherID, Content: "hi"},
	}, nil).Once()

	history, err := uc.History(context.Background(), callerID, otherID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestChatUsecase_History_UnknownCounterpart(t *testing.T) {
	cr := new(MockChatRepository)
	ar := new(MockAccountRepository)
	uc := usecases.NewChatUsecase(cr, ar)

	otherID := uuid.New()
	ar.On("GetByID", mock.Anything, otherID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.History(context.Background(), uuid.New(), otherID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

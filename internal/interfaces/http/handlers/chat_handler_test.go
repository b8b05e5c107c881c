package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/usecases"
)

func newChatTestRouter(accountID uuid.UUID, cr *chatRepoStub, ar *accountRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := usecases.NewChatUsecase(cr, ar)
	h := NewChatHandler(uc)

	r := gin.New()
	r.POST("/contacts/chat", authAs(accountID), h.Send)
	r.GET("/contacts/chat", authAs(accountID), h.History)
	return r
}

func TestChatHandler_Send(t *testing.T) {
	senderID := uuid.New()
	receiverID := uuid.New()
	var created *entities.ChatMessage

	cr := &chatRepoStub{
		createFn: func(ctx context.Context, msg *entities.ChatMessage) error {
			created = msg
			return nil
		},
	}
	r := newChatTestRouter(senderID, cr, &accountRepoStub{})

	body := `{"receiver":"` + receiverID.String() + `","content":"hey there"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, senderID, created.SenderID)
	require.Equal(t, receiverID, created.ReceiverID)
	require.Equal(t, entities.MessageTypeText, created.MessageType)
	require.Equal(t, "0", created.Amount)
}

func TestChatHandler_Send_PaymentMessage(t *testing.T) {
	senderID := uuid.New()
	txID := uuid.New()
	var created *entities.ChatMessage

	cr := &chatRepoStub{
		createFn: func(ctx context.Context, msg *entities.ChatMessage) error {
			created = msg
			return nil
		},
	}
	r := newChatTestRouter(senderID, cr, &accountRepoStub{})

	body := `{"receiver":"` + uuid.New().String() + `","messageType":"payment","amount":"5000",` +
		`"transactionRef":"` + txID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, entities.MessageTypePayment, created.MessageType)
	require.Equal(t, "5000", created.Amount)
	require.NotNil(t, created.TransactionID)
	require.Equal(t, txID, *created.TransactionID)
}

func TestChatHandler_Send_EmptyText(t *testing.T) {
	r := newChatTestRouter(uuid.New(), &chatRepoStub{}, &accountRepoStub{})

	body := `{"receiver":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_History(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()

	cr := &chatRepoStub{
		listBetweenFn: func(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error) {
			return []*entities.ChatMessage{
				{ID: uuid.New(), SenderID: a, ReceiverID: b, Content: "hello", Amount: "0", MessageType: entities.MessageTypeText},
			}, nil
		},
	}
	r := newChatTestRouter(callerID, cr, &accountRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/contacts/chat?receiver="+otherID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "messages")
	require.Contains(t, w.Body.String(), "hello")
}

func TestChatHandler_History_NonParticipant(t *testing.T) {
	r := newChatTestRouter(uuid.New(), &chatRepoStub{}, &accountRepoStub{})

	url := "/contacts/chat?sender=" + uuid.New().String() + "&receiver=" + uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatHandler_History_MissingReceiver(t *testing.T) {
	r := newChatTestRouter(uuid.New(), &chatRepoStub{}, &accountRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/contacts/chat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "receiver is required")
}

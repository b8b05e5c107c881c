package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/middleware"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/redis"
)

// authAs injects the authenticated account id the way the auth middleware does
func authAs(accountID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AccountIDKey, accountID)
		c.Next()
	}
}

type accountRepoStub struct {
	createFn        func(ctx context.Context, account *entities.Account) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	getBySubjectFn  func(ctx context.Context, subject string) (*entities.Account, error)
	getByUsernameFn func(ctx context.Context, username string) (*entities.Account, error)
	updateProfileFn func(ctx context.Context, id uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error)
}

func (s *accountRepoStub) Create(ctx context.Context, account *entities.Account) error {
	if s.createFn != nil {
		return s.createFn(ctx, account)
	}
	return nil
}

func (s *accountRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &entities.Account{ID: id, Username: "someone"}, nil
}

func (s *accountRepoStub) GetBySubject(ctx context.Context, subject string) (*entities.Account, error) {
	if s.getBySubjectFn != nil {
		return s.getBySubjectFn(ctx, subject)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *accountRepoStub) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *accountRepoStub) UpdateProfile(ctx context.Context, id uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error) {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, id, input)
	}
	return &entities.Account{ID: id}, nil
}

type identityRepoStub struct {
	createFn         func(ctx context.Context, identity *entities.LinkedIdentity) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.LinkedIdentity, error)
	listByAccountFn  func(ctx context.Context, accountID uuid.UUID) ([]*entities.LinkedIdentity, error)
	countByAccountFn func(ctx context.Context, accountID uuid.UUID) (int64, error)
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (s *identityRepoStub) Create(ctx context.Context, identity *entities.LinkedIdentity) error {
	if s.createFn != nil {
		return s.createFn(ctx, identity)
	}
	return nil
}

func (s *identityRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.LinkedIdentity, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *identityRepoStub) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.LinkedIdentity, error) {
	if s.listByAccountFn != nil {
		return s.listByAccountFn(ctx, accountID)
	}
	return []*entities.LinkedIdentity{}, nil
}

func (s *identityRepoStub) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if s.countByAccountFn != nil {
		return s.countByAccountFn(ctx, accountID)
	}
	return 0, nil
}

func (s *identityRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *identityRepoStub) PrimaryWallet(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *identityRepoStub) PrimaryEmail(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	return nil, domainerrors.ErrNotFound
}

type friendRepoStub struct {
	addFn    func(ctx context.Context, accountID, friendID uuid.UUID) error
	removeFn func(ctx context.Context, accountID, friendID uuid.UUID) error
	listFn   func(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error)
	existsFn func(ctx context.Context, accountID, friendID uuid.UUID) (bool, error)
}

func (s *friendRepoStub) Add(ctx context.Context, accountID, friendID uuid.UUID) error {
	if s.addFn != nil {
		return s.addFn(ctx, accountID, friendID)
	}
	return nil
}

func (s *friendRepoStub) Remove(ctx context.Context, accountID, friendID uuid.UUID) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, accountID, friendID)
	}
	return nil
}

func (s *friendRepoStub) List(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error) {
	if s.listFn != nil {
		return s.listFn(ctx, accountID)
	}
	return []*entities.Contact{}, nil
}

func (s *friendRepoStub) Exists(ctx context.Context, accountID, friendID uuid.UUID) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, accountID, friendID)
	}
	return false, nil
}

type directoryRepoStub struct {
	walletFn func(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error)
	emailFn  func(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error)
}

func (s *directoryRepoStub) SearchByWalletPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	if s.walletFn != nil {
		return s.walletFn(ctx, prefix, exclude, limit)
	}
	return []*entities.DirectoryEntry{}, nil
}

func (s *directoryRepoStub) SearchByEmailPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	if s.emailFn != nil {
		return s.emailFn(ctx, prefix, exclude, limit)
	}
	return []*entities.DirectoryEntry{}, nil
}

type paymentRequestRepoStub struct {
	createFn      func(ctx context.Context, request *entities.PaymentRequest) error
	getForPayeeFn func(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error)
	listPendingFn func(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error)
	clearFn       func(ctx context.Context, id, payeeID uuid.UUID) (bool, error)
	rejectFn      func(ctx context.Context, id, payeeID uuid.UUID) (bool, error)
}

func (s *paymentRequestRepoStub) Create(ctx context.Context, request *entities.PaymentRequest) error {
	if s.createFn != nil {
		return s.createFn(ctx, request)
	}
	return nil
}

func (s *paymentRequestRepoStub) GetForPayee(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error) {
	if s.getForPayeeFn != nil {
		return s.getForPayeeFn(ctx, id, payeeID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *paymentRequestRepoStub) ListPending(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error) {
	if s.listPendingFn != nil {
		return s.listPendingFn(ctx, payeeID)
	}
	return []*entities.PaymentRequestDetail{}, nil
}

func (s *paymentRequestRepoStub) Clear(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	if s.clearFn != nil {
		return s.clearFn(ctx, id, payeeID)
	}
	return true, nil
}

func (s *paymentRequestRepoStub) Reject(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, id, payeeID)
	}
	return true, nil
}

type transactionRepoStub struct {
	createFn            func(ctx context.Context, tx *entities.Transaction) error
	listByParticipantFn func(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error)
}

func (s *transactionRepoStub) Create(ctx context.Context, tx *entities.Transaction) error {
	if s.createFn != nil {
		return s.createFn(ctx, tx)
	}
	return nil
}

func (s *transactionRepoStub) ListByParticipant(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	if s.listByParticipantFn != nil {
		return s.listByParticipantFn(ctx, accountID, limit)
	}
	return []*entities.Transaction{}, nil
}

func (s *transactionRepoStub) ListUnverified(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	return []*entities.Transaction{}, nil
}

func (s *transactionRepoStub) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return nil
}

type chatRepoStub struct {
	createFn      func(ctx context.Context, msg *entities.ChatMessage) error
	listBetweenFn func(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error)
}

func (s *chatRepoStub) Create(ctx context.Context, msg *entities.ChatMessage) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	return nil
}

func (s *chatRepoStub) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error) {
	if s.listBetweenFn != nil {
		return s.listBetweenFn(ctx, a, b)
	}
	return []*entities.ChatMessage{}, nil
}

type aiChatRepoStub struct {
	appendFn        func(ctx context.Context, msg *entities.AiChatMessage) error
	listBySessionFn func(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error)
	listSessionsFn  func(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error)
}

func (s *aiChatRepoStub) Append(ctx context.Context, msg *entities.AiChatMessage) error {
	if s.appendFn != nil {
		return s.appendFn(ctx, msg)
	}
	return nil
}

func (s *aiChatRepoStub) ListBySession(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error) {
	if s.listBySessionFn != nil {
		return s.listBySessionFn(ctx, accountID, sessionID)
	}
	return []*entities.AiChatMessage{}, nil
}

func (s *aiChatRepoStub) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error) {
	if s.listSessionsFn != nil {
		return s.listSessionsFn(ctx, accountID)
	}
	return []*entities.AiChatSession{}, nil
}

type chainRepoStub struct {
	listFn func(ctx context.Context) ([]*entities.Chain, error)
}

func (s *chainRepoStub) Create(ctx context.Context, chain *entities.Chain) error { return nil }

func (s *chainRepoStub) GetByChainID(ctx context.Context, chainID int64) (*entities.Chain, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *chainRepoStub) List(ctx context.Context) ([]*entities.Chain, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Chain{}, nil
}

type tokenRepoStub struct {
	getBySymbolFn func(ctx context.Context, symbol string, chainID int64) (*entities.Token, error)
	listFn        func(ctx context.Context) ([]*entities.Token, error)
}

func (s *tokenRepoStub) Create(ctx context.Context, token *entities.Token) error { return nil }

func (s *tokenRepoStub) GetBySymbol(ctx context.Context, symbol string, chainID int64) (*entities.Token, error) {
	if s.getBySymbolFn != nil {
		return s.getBySymbolFn(ctx, symbol, chainID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) List(ctx context.Context) ([]*entities.Token, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Token{}, nil
}

type unitOfWorkStub struct{}

func (s *unitOfWorkStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type sessionStoreStub struct {
	createFn func(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	deleteFn func(ctx context.Context, sessionID string) error
}

func (s *sessionStoreStub) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	if s.createFn != nil {
		return s.createFn(ctx, sessionID, data, expiration)
	}
	return nil
}

func (s *sessionStoreStub) DeleteSession(ctx context.Context, sessionID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, sessionID)
	}
	return nil
}

type verifierStub struct {
	verifyFn func(token string) (*identity.ProviderClaims, error)
}

func (s *verifierStub) Verify(token string) (*identity.ProviderClaims, error) {
	if s.verifyFn != nil {
		return s.verifyFn(token)
	}
	return nil, identity.ErrInvalidProviderToken
}

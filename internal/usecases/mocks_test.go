package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/redis"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetBySubject(ctx context.Context, subject string) (*entities.Account, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, input entities.UpdateProfileInput) (*entities.Account, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

// Mock IdentityRepository
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *entities.LinkedIdentity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockIdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LinkedIdentity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LinkedIdentity), args.Error(1)
}

func (m *MockIdentityRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.LinkedIdentity, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LinkedIdentity), args.Error(1)
}

func (m *MockIdentityRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdentityRepository) PrimaryWallet(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LinkedIdentity), args.Error(1)
}

func (m *MockIdentityRepository) PrimaryEmail(ctx context.Context, accountID uuid.UUID) (*entities.LinkedIdentity, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LinkedIdentity), args.Error(1)
}

// Mock FriendRepository
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) Add(ctx context.Context, accountID, friendID uuid.UUID) error {
	args := m.Called(ctx, accountID, friendID)
	return args.Error(0)
}

func (m *MockFriendRepository) Remove(ctx context.Context, accountID, friendID uuid.UUID) error {
	args := m.Called(ctx, accountID, friendID)
	return args.Error(0)
}

func (m *MockFriendRepository) List(ctx context.Context, accountID uuid.UUID) ([]*entities.Contact, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contact), args.Error(1)
}

func (m *MockFriendRepository) Exists(ctx context.Context, accountID, friendID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID, friendID)
	return args.Bool(0), args.Error(1)
}

// Mock DirectoryRepository
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) SearchByWalletPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	args := m.Called(ctx, prefix, exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DirectoryEntry), args.Error(1)
}

func (m *MockDirectoryRepository) SearchByEmailPrefix(ctx context.Context, prefix string, exclude uuid.UUID, limit int) ([]*entities.DirectoryEntry, error) {
	args := m.Called(ctx, prefix, exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DirectoryEntry), args.Error(1)
}

// Mock PaymentRequestRepository
type MockPaymentRequestRepository struct {
	mock.Mock
}

func (m *MockPaymentRequestRepository) Create(ctx context.Context, request *entities.PaymentRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPaymentRequestRepository) GetForPayee(ctx context.Context, id, payeeID uuid.UUID) (*entities.PaymentRequestDetail, error) {
	args := m.Called(ctx, id, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRequestDetail), args.Error(1)
}

func (m *MockPaymentRequestRepository) ListPending(ctx context.Context, payeeID uuid.UUID) ([]*entities.PaymentRequestDetail, error) {
	args := m.Called(ctx, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentRequestDetail), args.Error(1)
}

func (m *MockPaymentRequestRepository) Clear(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, payeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRequestRepository) Reject(ctx context.Context, id, payeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, payeeID)
	return args.Bool(0), args.Error(1)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByParticipant(ctx context.Context, accountID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListUnverified(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, msg *entities.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

// Mock AiChatRepository
type MockAiChatRepository struct {
	mock.Mock
}

func (m *MockAiChatRepository) Append(ctx context.Context, msg *entities.AiChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockAiChatRepository) ListBySession(ctx context.Context, accountID, sessionID uuid.UUID) ([]*entities.AiChatMessage, error) {
	args := m.Called(ctx, accountID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AiChatMessage), args.Error(1)
}

func (m *MockAiChatRepository) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entities.AiChatSession, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AiChatSession), args.Error(1)
}

// Mock ChainRepository
type MockChainRepository struct {
	mock.Mock
}

func (m *MockChainRepository) Create(ctx context.Context, chain *entities.Chain) error {
	args := m.Called(ctx, chain)
	return args.Error(0)
}

func (m *MockChainRepository) GetByChainID(ctx context.Context, chainID int64) (*entities.Chain, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Chain), args.Error(1)
}

func (m *MockChainRepository) List(ctx context.Context) ([]*entities.Chain, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Chain), args.Error(1)
}

// Mock TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(ctx context.Context, token *entities.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetBySymbol(ctx context.Context, symbol string, chainID int64) (*entities.Token, error) {
	args := m.Called(ctx, symbol, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Token), args.Error(1)
}

func (m *MockTokenRepository) List(ctx context.Context) ([]*entities.Token, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Token), args.Error(1)
}

// Mock ProviderVerifier
type MockProviderVerifier struct {
	mock.Mock
}

func (m *MockProviderVerifier) Verify(token string) (*identity.ProviderClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.ProviderClaims), args.Error(1)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

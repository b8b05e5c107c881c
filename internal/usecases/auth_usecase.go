package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"pocketpay.backend/internal/domain/entities"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/domain/repositories"
	"pocketpay.backend/pkg/crypto"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/jwt"
	"pocketpay.backend/pkg/redis"
)

const sessionTTL = 7 * 24 * time.Hour

// ProviderVerifier verifies external provider tokens
type ProviderVerifier interface {
	Verify(token string) (*identity.ProviderClaims, error)
}

// SessionStore persists session token pairs
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles authentication business logic. Accounts are created on
// the first successful provider authentication; the backend never stores
// credentials of its own.
type AuthUsecase struct {
	accountRepo  repositories.AccountRepository
	identityRepo repositories.IdentityRepository
	verifier     ProviderVerifier
	jwtService   *jwt.JWTService
	sessions     SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	accountRepo repositories.AccountRepository,
	identityRepo repositories.IdentityRepository,
	verifier ProviderVerifier,
	jwtService *jwt.JWTService,
	sessions SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo:  accountRepo,
		identityRepo: identityRepo,
		verifier:     verifier,
		jwtService:   jwtService,
		sessions:     sessions,
	}
}

// Login exchanges a provider token for a first-party session. The account row
// is created on first sight of the subject; subsequent logins reuse it.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	var subject, email string
	isGuest := input.IsGuest

	if isGuest {
		guestSubject, err := crypto.GenerateGuestSubject()
		if err != nil {
			return nil, err
		}
		subject = guestSubject
	} else {
		if u.verifier == nil {
			return nil, domainerrors.Unauthorized("provider verification is not configured")
		}
		claims, err := u.verifier.Verify(input.ProviderToken)
		if err != nil {
			if errors.Is(err, identity.ErrProviderTokenExpired) {
				return nil, domainerrors.ErrTokenExpired
			}
			return nil, domainerrors.ErrInvalidCredentials
		}
		subject = claims.Subject
		email = claims.Email
		if email == "" {
			email = input.Email
		}
	}

	account, err := u.accountRepo.GetBySubject(ctx, subject)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		account, err = u.bootstrapAccount(ctx, subject, email, input, isGuest)
		if err != nil {
			return nil, err
		}
	}

	pair, err := u.jwtService.GenerateTokenPair(account.ID, account.Subject, account.IsGuest)
	if err != nil {
		return nil, err
	}

	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		return nil, err
	}
	if err := u.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, sessionTTL); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		SessionID:    sessionID,
		Account:      account,
	}, nil
}

func (u *AuthUsecase) bootstrapAccount(ctx context.Context, subject, email string, input *entities.LoginInput, isGuest bool) (*entities.Account, error) {
	username, err := u.pickUsername(ctx, email, isGuest)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &entities.Account{
		ID:        uuid.New(),
		Subject:   subject,
		Username:  username,
		IsGuest:   isGuest,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if email != "" {
		verifiedAt := now
		if err := u.identityRepo.Create(ctx, &entities.LinkedIdentity{
			ID:         uuid.New(),
			AccountID:  account.ID,
			Type:       entities.IdentityTypeEmail,
			Value:      strings.ToLower(email),
			VerifiedAt: &verifiedAt,
			CreatedAt:  now,
		}); err != nil {
			return nil, err
		}
	}

	if input.WalletAddress != "" {
		if err := u.identityRepo.Create(ctx, &entities.LinkedIdentity{
			ID:         uuid.New(),
			AccountID:  account.ID,
			Type:       entities.IdentityTypeWallet,
			Value:      input.WalletAddress,
			ChainType:  input.ChainType,
			ClientType: entities.WalletClientCustodial,
			CreatedAt:  now,
		}); err != nil {
			return nil, err
		}
	}

	return account, nil
}

// pickUsername derives a username from the email local part, falling back to
// a random handle, retrying with suffixes until the name is free.
func (u *AuthUsecase) pickUsername(ctx context.Context, email string, isGuest bool) (string, error) {
	base := "user"
	if isGuest {
		base = "guest"
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		local := strings.ToLower(email[:at])
		cleaned := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, local)
		if len(cleaned) >= 2 {
			if len(cleaned) > 20 {
				cleaned = cleaned[:20]
			}
			base = cleaned
		}
	}

	if _, err := u.accountRepo.GetByUsername(ctx, base); errors.Is(err, domainerrors.ErrNotFound) {
		return base, nil
	}

	for i := 0; i < 5; i++ {
		suffix, err := crypto.GenerateRandomToken(3)
		if err != nil {
			return "", err
		}
		candidate := base + suffix
		if _, err := u.accountRepo.GetByUsername(ctx, candidate); errors.Is(err, domainerrors.ErrNotFound) {
			return candidate, nil
		}
	}
	return "", domainerrors.ErrAlreadyExists
}

// Refresh validates a refresh token and issues a fresh pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	// the account must still exist
	account, err := u.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return u.jwtService.GenerateTokenPair(account.ID, account.Subject, account.IsGuest)
}

// Logout drops the server side session
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.DeleteSession(ctx, sessionID)
}

// Me returns the authenticated account
func (u *AuthUsecase) Me(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, accountID)
}

// ResolveSubject maps a provider subject to an account id, for requests
// authenticated directly with a provider token.
func (u *AuthUsecase) ResolveSubject(ctx context.Context, subject string) (uuid.UUID, error) {
	account, err := u.accountRepo.GetBySubject(ctx, subject)
	if err != nil {
		return uuid.Nil, err
	}
	return account.ID, nil
}

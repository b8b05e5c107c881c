package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pocketpay.backend/internal/domain/entities"
	"pocketpay.backend/internal/usecases"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/jwt"
)

func newAuthTestRouter(ar *accountRepoStub, ir *identityRepoStub, v *verifierStub) (*gin.Engine, *usecases.AuthUsecase) {
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour, 24*time.Hour)
	uc := usecases.NewAuthUsecase(ar, ir, v, jwtService, &sessionStoreStub{})
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
	return r, uc
}

func TestAuthHandler_Login(t *testing.T) {
	accountID := uuid.New()
	ar := &accountRepoStub{
		getBySubjectFn: func(ctx context.Context, subject string) (*entities.Account, error) {
			return &entities.Account{ID: accountID, Subject: subject, Username: "alice"}, nil
		},
	}
	v := &verifierStub{
		verifyFn: func(token string) (*identity.ProviderClaims, error) {
			return &identity.ProviderClaims{Subject: "did:provider:alice"}, nil
		},
	}
	r, _ := newAuthTestRouter(ar, &identityRepoStub{}, v)

	body := `{"providerToken":"valid-token"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "accessToken")
	require.Contains(t, w.Body.String(), "alice")
}

func TestAuthHandler_Login_MissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(&accountRepoStub{}, &identityRepoStub{}, &verifierStub{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "providerToken")
}

func TestAuthHandler_Login_InvalidProviderToken(t *testing.T) {
	r, _ := newAuthTestRouter(&accountRepoStub{}, &identityRepoStub{}, &verifierStub{})

	body := `{"providerToken":"garbage"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_Guest(t *testing.T) {
	created := false
	ar := &accountRepoStub{
		createFn: func(ctx context.Context, account *entities.Account) error {
			created = true
			return nil
		},
	}
	r, _ := newAuthTestRouter(ar, &identityRepoStub{}, &verifierStub{})

	body := `{"isGuest":true}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, created)
	require.Contains(t, w.Body.String(), "sessionId")
}

func TestAuthHandler_Refresh(t *testing.T) {
	accountID := uuid.New()
	ar := &accountRepoStub{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
			return &entities.Account{ID: id, Subject: "did:provider:alice"}, nil
		},
	}
	r, uc := newAuthTestRouter(ar, &identityRepoStub{}, &verifierStub{})
	_ = uc

	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour, 24*time.Hour)
	pair, err := jwtService.GenerateTokenPair(accountID, "did:provider:alice", false)
	require.NoError(t, err)

	body := `{"refreshToken":"` + pair.RefreshToken + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "accessToken")
}

func TestAuthHandler_Refresh_BadToken(t *testing.T) {
	r, _ := newAuthTestRouter(&accountRepoStub{}, &identityRepoStub{}, &verifierStub{})

	body := `{"refreshToken":"not-a-jwt"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	accountID := uuid.New()

	ar := &accountRepoStub{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
			require.Equal(t, accountID, id)
			return &entities.Account{ID: id, Username: "alice"}, nil
		},
	}
	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour, 24*time.Hour)
	uc := usecases.NewAuthUsecase(ar, &identityRepoStub{}, &verifierStub{}, jwtService, &sessionStoreStub{})
	h := NewAuthHandler(uc)

	r := gin.New()
	r.GET("/auth/me", authAs(accountID), h.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour, 24*time.Hour)
	uc := usecases.NewAuthUsecase(&accountRepoStub{}, &identityRepoStub{}, &verifierStub{}, jwtService, &sessionStoreStub{})
	h := NewAuthHandler(uc)

	r := gin.New()
	r.GET("/auth/me", h.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deleted := ""

	store := &sessionStoreStub{
		deleteFn: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour, 24*time.Hour)
	uc := usecases.NewAuthUsecase(&accountRepoStub{}, &identityRepoStub{}, &verifierStub{}, jwtService, store)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/auth/logout", authAs(uuid.New()), h.Logout)

	body := `{"sessionId":"abc123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "abc123", deleted)
}

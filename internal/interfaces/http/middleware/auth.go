package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pocketpay.backend/pkg/identity"
	"pocketpay.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccountIDKey is the context key for the authenticated account id
	AccountIDKey = "account_id"
	// SubjectKey is the context key for the provider subject
	SubjectKey = "subject"
)

// SubjectResolver maps a verified provider subject to an account id. It is
// how the middleware stays out of the persistence layer.
type SubjectResolver func(ctx context.Context, subject string) (uuid.UUID, error)

// AuthMiddleware authenticates a request with either a first-party token or
// an external provider token. First-party tokens carry the account id in
// their claims; provider tokens carry only the subject, which is resolved to
// an account.
func AuthMiddleware(jwtService *jwt.JWTService, verifier *identity.Verifier, resolve SubjectResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)

		if claims, err := jwtService.ValidateToken(tokenString); err == nil {
			c.Set(AccountIDKey, claims.AccountID)
			c.Set(SubjectKey, claims.Subject)
			c.Next()
			return
		} else if err == jwt.ErrExpiredToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token has expired",
			})
			return
		}

		if verifier != nil && resolve != nil {
			providerClaims, err := verifier.Verify(tokenString)
			if err == nil {
				accountID, rerr := resolve(c.Request.Context(), providerClaims.Subject)
				if rerr != nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
						"error": "No account for this identity",
					})
					return
				}
				c.Set(AccountIDKey, accountID)
				c.Set(SubjectKey, providerClaims.Subject)
				c.Next()
				return
			}
			if err == identity.ErrProviderTokenExpired {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid token",
		})
	}
}

// GetAccountID gets the authenticated account id from context
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return accountID.(uuid.UUID), true
}

// GetSubject gets the provider subject from context
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(SubjectKey)
	if !exists {
		return "", false
	}
	return subject.(string), true
}

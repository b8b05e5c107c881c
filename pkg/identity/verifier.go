package identity

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
)

var (
	ErrInvalidProviderToken = errors.New("invalid provider token")
	ErrProviderTokenExpired = errors.New("provider token has expired")
)

// ProviderClaims are the claims extracted from a verified provider token.
// Subject is the provider's stable user id and is the only field callers may
// key accounts on.
type ProviderClaims struct {
	Subject  string `json:"sub"`
	Issuer   string `json:"iss"`
	Email    string `json:"email,omitempty"`
	Wallet   string `json:"wallet_address,omitempty"`
	IssuedAt int64  `json:"iat,omitempty"`
}

// Verifier checks ES256 tokens minted by the external auth provider. The
// backend never mints these tokens; it only proves a caller holds one.
type Verifier struct {
	issuer   string
	audience string
	key      *ecdsa.PublicKey
	now      func() time.Time
}

// NewVerifier builds a verifier from the provider's PEM-encoded public key
func NewVerifier(issuer, audience, publicKeyPEM string) (*Verifier, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("provider public key is not valid PEM")
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider public key: %w", err)
	}
	ecKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("provider public key is not an ECDSA key")
	}
	return &Verifier{issuer: issuer, audience: audience, key: ecKey, now: time.Now}, nil
}

// NewVerifierFromJWKS builds a verifier from a provider JWK set document,
// picking the first ES256 verification key.
func NewVerifierFromJWKS(issuer, audience string, jwksJSON []byte) (*Verifier, error) {
	var set jose.JSONWebKeySet
	if err := json.Unmarshal(jwksJSON, &set); err != nil {
		return nil, fmt.Errorf("failed to parse provider JWKS: %w", err)
	}
	for _, k := range set.Keys {
		if ecKey, ok := k.Key.(*ecdsa.PublicKey); ok {
			return &Verifier{issuer: issuer, audience: audience, key: ecKey, now: time.Now}, nil
		}
	}
	return nil, fmt.Errorf("provider JWKS contains no ECDSA key")
}

// Verify checks the token's signature, issuer, audience and expiry, and
// returns its claims.
func (v *Verifier) Verify(token string) (*ProviderClaims, error) {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, ErrInvalidProviderToken
	}
	for _, h := range parsed.Headers {
		if h.Algorithm != string(jose.ES256) {
			return nil, ErrInvalidProviderToken
		}
	}

	var std jwt.Claims
	var claims ProviderClaims
	if err := parsed.Claims(v.key, &std, &claims); err != nil {
		return nil, ErrInvalidProviderToken
	}

	expected := jwt.Expected{
		Issuer: v.issuer,
		Time:   v.now(),
	}
	if v.audience != "" {
		expected.Audience = jwt.Audience{v.audience}
	}
	if err := std.Validate(expected); err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, ErrProviderTokenExpired
		}
		return nil, ErrInvalidProviderToken
	}
	if claims.Subject == "" {
		claims.Subject = std.Subject
	}
	if claims.Subject == "" {
		return nil, ErrInvalidProviderToken
	}
	return &claims, nil
}

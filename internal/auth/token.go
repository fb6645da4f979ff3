package auth

import (
	"context"
	"errors"
	"time"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
	"github.com/0xfrait/auth-service/pkg/jwt"
)

const (
	// TokenTTL is the validity window of issued tokens. The banned-token
	// ledger expires its entries after the same window.
	TokenTTL = 15 * time.Minute

	// CookieName is the cookie carrying the bearer token.
	CookieName = "jwt"
)

// Claims is the signed token payload. The token itself is the credential;
// nothing is stored server-side at issuance.
type Claims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

// Valid rejects expired claims. Hooked into jwt.Signer.Parse.
func (c Claims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return jwt.ErrExpiredToken
	}
	return nil
}

// TokenService issues bearer tokens and validates presented ones against
// both the signature and the revocation ledger.
type TokenService struct {
	signer *jwt.Signer
	banned store.BannedTokenStore
}

// NewTokenService creates a token service signing with signer and consulting
// banned for revocations.
func NewTokenService(signer *jwt.Signer, banned store.BannedTokenStore) *TokenService {
	return &TokenService{signer: signer, banned: banned}
}

// Issue signs a token for email expiring TokenTTL from now.
func (s *TokenService) Issue(email domain.Email) (string, error) {
	claims := Claims{
		Subject:   email.String(),
		ExpiresAt: time.Now().Add(TokenTTL).Unix(),
	}
	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", errors.Join(domain.ErrUnexpected, err)
	}
	return token, nil
}

// Validate checks the revocation ledger first, then signature and expiry.
// Every rejection collapses to domain.ErrInvalidToken so callers cannot
// learn which check failed; only ledger backend failures surface separately,
// as domain.ErrUnexpected.
func (s *TokenService) Validate(ctx context.Context, token string) (Claims, error) {
	banned, err := s.banned.ContainsToken(ctx, token)
	if err != nil {
		return Claims{}, errors.Join(domain.ErrUnexpected, err)
	}
	if banned {
		return Claims{}, domain.ErrInvalidToken
	}

	var claims Claims
	if err := s.signer.Parse(token, &claims); err != nil {
		return Claims{}, domain.ErrInvalidToken
	}
	return claims, nil
}

// Revoke records token in the ledger. Idempotent.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.banned.AddToken(ctx, token); err != nil {
		return errors.Join(domain.ErrUnexpected, err)
	}
	return nil
}

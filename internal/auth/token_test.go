package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/auth"
	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store/memory"
	"github.com/0xfrait/auth-service/pkg/jwt"
)

const testSecret = "test-signing-secret"

func newTokenService(t *testing.T) (*auth.TokenService, *memory.BannedTokenStore) {
	t.Helper()
	signer, err := jwt.NewSigner(testSecret)
	require.NoError(t, err)
	banned := memory.NewBannedTokenStore()
	return auth.NewTokenService(signer, banned), banned
}

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.ParseEmail(raw)
	require.NoError(t, err)
	return email
}

func TestTokenServiceIssue(t *testing.T) {
	t.Parallel()

	tokens, _ := newTokenService(t)
	token, err := tokens.Issue(mustEmail(t, "ap@0xfrait.com"))
	require.NoError(t, err)

	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := tokens.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ap@0xfrait.com", claims.Subject)
	assert.Greater(t, claims.ExpiresAt, time.Now().Add(auth.TokenTTL-time.Minute).Unix())
}

func TestTokenServiceValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("banned token rejected", func(t *testing.T) {
		tokens, banned := newTokenService(t)
		token, err := tokens.Issue(mustEmail(t, "ap@0xfrait.com"))
		require.NoError(t, err)

		require.NoError(t, banned.AddToken(ctx, token))

		_, err = tokens.Validate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		tokens, _ := newTokenService(t)

		signer, err := jwt.NewSigner(testSecret)
		require.NoError(t, err)
		expired, err := signer.Sign(auth.Claims{
			Subject:   "ap@0xfrait.com",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = tokens.Validate(ctx, expired)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("foreign signature rejected", func(t *testing.T) {
		tokens, _ := newTokenService(t)

		foreign, err := jwt.NewSigner("some-other-secret")
		require.NoError(t, err)
		token, err := foreign.Sign(auth.Claims{
			Subject:   "ap@0xfrait.com",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = tokens.Validate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		tokens, _ := newTokenService(t)
		_, err := tokens.Validate(ctx, "not.a.token")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestTokenServiceRevoke(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens, _ := newTokenService(t)

	token, err := tokens.Issue(mustEmail(t, "ap@0xfrait.com"))
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, token))
	require.NoError(t, tokens.Revoke(ctx, token)) // idempotent

	_, err = tokens.Validate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/pkg/jwt"
)

type testClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

func (c testClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return jwt.ErrExpiredToken
	}
	return nil
}

func TestNewSigner(t *testing.T) {
	t.Parallel()

	t.Run("with secret", func(t *testing.T) {
		signer, err := jwt.NewSigner("secret")
		require.NoError(t, err)
		require.NotNil(t, signer)
	})

	t.Run("empty secret", func(t *testing.T) {
		signer, err := jwt.NewSigner("")
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
		require.Nil(t, signer)
	})
}

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	signer, err := jwt.NewSigner("secret")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims := testClaims{Subject: "user@example.com", ExpiresAt: time.Now().Add(time.Hour).Unix()}

		token, err := signer.Sign(claims)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)

		var parsed testClaims
		require.NoError(t, signer.Parse(token, &parsed))
		assert.Equal(t, claims, parsed)
	})

	t.Run("nil claims", func(t *testing.T) {
		_, err := signer.Sign(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := signer.Sign(testClaims{Subject: "u", ExpiresAt: time.Now().Add(-time.Minute).Unix()})
		require.NoError(t, err)

		var parsed testClaims
		assert.ErrorIs(t, signer.Parse(token, &parsed), jwt.ErrExpiredToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := jwt.NewSigner("other-secret")
		require.NoError(t, err)

		token, err := signer.Sign(testClaims{Subject: "u", ExpiresAt: time.Now().Add(time.Hour).Unix()})
		require.NoError(t, err)

		var parsed testClaims
		assert.ErrorIs(t, other.Parse(token, &parsed), jwt.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := signer.Sign(testClaims{Subject: "u", ExpiresAt: time.Now().Add(time.Hour).Unix()})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + ".eyJzdWIiOiJhdHRhY2tlciJ9." + parts[2]

		var parsed testClaims
		assert.ErrorIs(t, signer.Parse(tampered, &parsed), jwt.ErrInvalidSignature)
	})

	t.Run("malformed token", func(t *testing.T) {
		var parsed testClaims
		assert.ErrorIs(t, signer.Parse("not-a-token", &parsed), jwt.ErrInvalidToken)
		assert.ErrorIs(t, signer.Parse("a.b", &parsed), jwt.ErrInvalidToken)
	})
}

// Package storetest holds contract suites shared by every implementation of
// the store interfaces. In-memory and networked stores run the exact same
// assertions; networked tests are gated on backend availability by their
// own packages.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
)

// randomEmail returns a unique address so suites can run against shared
// backends (a live postgres or redis) without colliding across runs.
func randomEmail(t *testing.T) domain.Email {
	t.Helper()
	email, err := domain.ParseEmail(fmt.Sprintf("user-%s@example.com", uuid.NewString()))
	require.NoError(t, err)
	return email
}

func mustPassword(t *testing.T, raw string) domain.Password {
	t.Helper()
	password, err := domain.ParsePassword(raw)
	require.NoError(t, err)
	return password
}

// RunUserStoreSuite exercises the store.UserStore contract.
func RunUserStoreSuite(t *testing.T, s store.UserStore) {
	ctx := context.Background()

	t.Run("add then get", func(t *testing.T) {
		user := domain.NewUser(randomEmail(t), mustPassword(t, "$3curedZpass"), true)
		require.NoError(t, s.AddUser(ctx, user))

		got, err := s.GetUser(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.True(t, got.Password.Equal(user.Password))
		assert.True(t, got.RequiresTwoFA)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		user := domain.NewUser(randomEmail(t), mustPassword(t, "$3curedZpass"), false)
		require.NoError(t, s.AddUser(ctx, user))

		err := s.AddUser(ctx, user)
		assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
	})

	t.Run("get unknown user", func(t *testing.T) {
		_, err := s.GetUser(ctx, randomEmail(t))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("validate user", func(t *testing.T) {
		password := mustPassword(t, "correct-horse1")
		user := domain.NewUser(randomEmail(t), password, false)
		require.NoError(t, s.AddUser(ctx, user))

		assert.NoError(t, s.ValidateUser(ctx, user.Email, password))

		wrong := mustPassword(t, "battery-staple")
		assert.ErrorIs(t, s.ValidateUser(ctx, user.Email, wrong), store.ErrInvalidPassword)

		assert.ErrorIs(t, s.ValidateUser(ctx, randomEmail(t), password), store.ErrUserNotFound)
	})
}

// RunBannedTokenStoreSuite exercises the store.BannedTokenStore contract.
func RunBannedTokenStoreSuite(t *testing.T, s store.BannedTokenStore) {
	ctx := context.Background()

	t.Run("banned token is found", func(t *testing.T) {
		token := "token-" + uuid.NewString()
		require.NoError(t, s.AddToken(ctx, token))

		banned, err := s.ContainsToken(ctx, token)
		require.NoError(t, err)
		assert.True(t, banned)
	})

	t.Run("unknown token is not banned", func(t *testing.T) {
		banned, err := s.ContainsToken(ctx, "token-"+uuid.NewString())
		require.NoError(t, err)
		assert.False(t, banned)
	})

	t.Run("ban is idempotent", func(t *testing.T) {
		token := "token-" + uuid.NewString()
		require.NoError(t, s.AddToken(ctx, token))
		require.NoError(t, s.AddToken(ctx, token))

		banned, err := s.ContainsToken(ctx, token)
		require.NoError(t, err)
		assert.True(t, banned)
	})
}

// RunTwoFACodeStoreSuite exercises the store.TwoFACodeStore contract.
func RunTwoFACodeStoreSuite(t *testing.T, s store.TwoFACodeStore) {
	ctx := context.Background()

	t.Run("add then get", func(t *testing.T) {
		email := randomEmail(t)
		attemptID := domain.NewLoginAttemptID()
		code := domain.NewTwoFACode()
		require.NoError(t, s.AddCode(ctx, email, attemptID, code))

		gotID, gotCode, err := s.GetCode(ctx, email)
		require.NoError(t, err)
		assert.True(t, attemptID.Equal(gotID))
		assert.True(t, code.Equal(gotCode))
	})

	t.Run("second challenge replaces the first", func(t *testing.T) {
		email := randomEmail(t)
		first := domain.NewLoginAttemptID()
		require.NoError(t, s.AddCode(ctx, email, first, domain.NewTwoFACode()))

		second := domain.NewLoginAttemptID()
		secondCode := domain.NewTwoFACode()
		require.NoError(t, s.AddCode(ctx, email, second, secondCode))

		gotID, gotCode, err := s.GetCode(ctx, email)
		require.NoError(t, err)
		assert.True(t, second.Equal(gotID))
		assert.True(t, secondCode.Equal(gotCode))
		assert.False(t, first.Equal(gotID))
	})

	t.Run("remove consumes the challenge", func(t *testing.T) {
		email := randomEmail(t)
		require.NoError(t, s.AddCode(ctx, email, domain.NewLoginAttemptID(), domain.NewTwoFACode()))

		require.NoError(t, s.RemoveCode(ctx, email))

		_, _, err := s.GetCode(ctx, email)
		assert.ErrorIs(t, err, store.ErrChallengeNotFound)
	})

	t.Run("get and remove on unknown email", func(t *testing.T) {
		email := randomEmail(t)
		_, _, err := s.GetCode(ctx, email)
		assert.ErrorIs(t, err, store.ErrChallengeNotFound)

		assert.ErrorIs(t, s.RemoveCode(ctx, email), store.ErrChallengeNotFound)
	})
}

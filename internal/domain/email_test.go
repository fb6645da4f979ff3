package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/domain"
)

func TestParseEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, raw := range []string{
			"a@b.com",
			"ap@0xfrait.com",
			"first.last@sub.example.org",
			"user+tag@example.io",
		} {
			email, err := domain.ParseEmail(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, email.String())
			assert.False(t, email.IsZero())
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"   ",
			"u.org",
			"@me.org",
			"user@",
			"no spaces@example.com ",
			"double@@example.com",
		} {
			_, err := domain.ParseEmail(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("equality is case-sensitive", func(t *testing.T) {
		lower, err := domain.ParseEmail("user@example.com")
		require.NoError(t, err)
		upper, err := domain.ParseEmail("User@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, lower, upper)
	})
}

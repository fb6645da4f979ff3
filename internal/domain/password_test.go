package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/domain"
)

func TestParsePassword(t *testing.T) {
	t.Parallel()

	t.Run("accepts passwords of at least 8 characters", func(t *testing.T) {
		for _, raw := range []string{"goodpass", "goodpass1", "$3curedZ", "a very long passphrase"} {
			password, err := domain.ParsePassword(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, password.String())
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		for _, raw := range []string{"", "123456", "1234567"} {
			_, err := domain.ParsePassword(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("equality is exact", func(t *testing.T) {
		a, err := domain.ParsePassword("password1")
		require.NoError(t, err)
		b, err := domain.ParsePassword("password1")
		require.NoError(t, err)
		c, err := domain.ParsePassword("password2")
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store/redisstore"
	"github.com/0xfrait/auth-service/internal/store/storetest"
)

// newClient connects to the redis instance named by TEST_REDIS_URL, skipping
// the test when none is configured. These are integration tests; the
// in-memory implementations cover the contract on every run.
func newClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping redis integration tests")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestBannedTokenStore(t *testing.T) {
	client := newClient(t)
	storetest.RunBannedTokenStoreSuite(t, redisstore.NewBannedTokenStore(client, 15*time.Minute))
}

func TestBannedTokenStoreTTL(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	s := redisstore.NewBannedTokenStore(client, 15*time.Minute)
	require.NoError(t, s.AddToken(ctx, "ttl-probe-token"))

	ttl, err := client.TTL(ctx, "banned_token:ttl-probe-token").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 14*time.Minute)
	assert.LessOrEqual(t, ttl, 15*time.Minute)
}

func TestTwoFACodeStore(t *testing.T) {
	client := newClient(t)
	storetest.RunTwoFACodeStoreSuite(t, redisstore.NewTwoFACodeStore(client))
}

func TestTwoFACodeStoreTTL(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	email, err := domain.ParseEmail("ttl-probe@example.com")
	require.NoError(t, err)

	s := redisstore.NewTwoFACodeStore(client)
	require.NoError(t, s.AddCode(ctx, email, domain.NewLoginAttemptID(), domain.NewTwoFACode()))
	t.Cleanup(func() { _ = s.RemoveCode(ctx, email) })

	ttl, err := client.TTL(ctx, "two_fa_code:ttl-probe@example.com").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, redisstore.ChallengeTTL)
}

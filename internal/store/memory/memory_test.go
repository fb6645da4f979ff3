package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store/memory"
	"github.com/0xfrait/auth-service/internal/store/storetest"
)

func TestUserStore(t *testing.T) {
	t.Parallel()
	storetest.RunUserStoreSuite(t, memory.NewUserStore())
}

func TestBannedTokenStore(t *testing.T) {
	t.Parallel()
	storetest.RunBannedTokenStoreSuite(t, memory.NewBannedTokenStore())
}

func TestTwoFACodeStore(t *testing.T) {
	t.Parallel()
	storetest.RunTwoFACodeStoreSuite(t, memory.NewTwoFACodeStore())
}

// Stores are shared instances reached from concurrent request handlers, so
// the maps must hold up under simultaneous readers and writers.
func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memory.NewUserStore()
	banned := memory.NewBannedTokenStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			raw := fmt.Sprintf("worker-%d@example.com", n)
			email, err := domain.ParseEmail(raw)
			assert.NoError(t, err)
			password, err := domain.ParsePassword("concurrent-pass")
			assert.NoError(t, err)

			assert.NoError(t, users.AddUser(ctx, domain.NewUser(email, password, false)))
			assert.NoError(t, users.ValidateUser(ctx, email, password))

			assert.NoError(t, banned.AddToken(ctx, raw))
			ok, err := banned.ContainsToken(ctx, raw)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
}

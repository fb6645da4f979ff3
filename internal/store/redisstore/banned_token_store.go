// Package redisstore implements the self-expiring stores on Redis. Entries
// carry a TTL so stale state is purged by the backend without explicit
// cleanup passes.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xfrait/auth-service/internal/store"
)

const bannedTokenKeyPrefix = "banned_token:"

// BannedTokenStore keeps revoked tokens with a TTL equal to the token's own
// validity window. Once a token would have expired anyway, its ban entry may
// be dropped without weakening the revocation guarantee.
type BannedTokenStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewBannedTokenStore creates a ledger whose entries expire after ttl.
// The ttl must match the token lifetime configured in the token service.
func NewBannedTokenStore(client redis.UniversalClient, ttl time.Duration) *BannedTokenStore {
	return &BannedTokenStore{client: client, ttl: ttl}
}

// AddToken implements store.BannedTokenStore. SET overwrites, so re-banning
// is naturally idempotent and refreshes the TTL.
func (s *BannedTokenStore) AddToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, bannedTokenKeyPrefix+token, true, s.ttl).Err(); err != nil {
		return errors.Join(store.ErrStoreFailure, err)
	}
	return nil
}

// ContainsToken implements store.BannedTokenStore.
func (s *BannedTokenStore) ContainsToken(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, bannedTokenKeyPrefix+token).Result()
	if err != nil {
		return false, errors.Join(store.ErrStoreFailure, err)
	}
	return n > 0, nil
}

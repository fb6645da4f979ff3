package memory

import (
	"context"
	"sync"
)

// BannedTokenStore is a set-backed store.BannedTokenStore. Entries never
// expire, which is acceptable only for short-lived processes; the redis
// implementation bounds growth with a TTL.
type BannedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewBannedTokenStore creates an empty in-memory revocation ledger.
func NewBannedTokenStore() *BannedTokenStore {
	return &BannedTokenStore{tokens: make(map[string]struct{})}
}

// AddToken implements store.BannedTokenStore.
func (s *BannedTokenStore) AddToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}
	return nil
}

// ContainsToken implements store.BannedTokenStore.
func (s *BannedTokenStore) ContainsToken(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, banned := s.tokens[token]
	return banned, nil
}

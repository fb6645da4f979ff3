package memory

import (
	"context"
	"sync"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
)

type challenge struct {
	attemptID domain.LoginAttemptID
	code      domain.TwoFACode
}

// TwoFACodeStore is a map-backed store.TwoFACodeStore holding one live
// challenge per email.
type TwoFACodeStore struct {
	mu    sync.RWMutex
	codes map[domain.Email]challenge
}

// NewTwoFACodeStore creates an empty in-memory challenge store.
func NewTwoFACodeStore() *TwoFACodeStore {
	return &TwoFACodeStore{codes: make(map[domain.Email]challenge)}
}

// AddCode implements store.TwoFACodeStore. An existing challenge for the
// same email is overwritten, invalidating its attempt id and code.
func (s *TwoFACodeStore) AddCode(_ context.Context, email domain.Email, attemptID domain.LoginAttemptID, code domain.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[email] = challenge{attemptID: attemptID, code: code}
	return nil
}

// GetCode implements store.TwoFACodeStore.
func (s *TwoFACodeStore) GetCode(_ context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.codes[email]
	if !exists {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, store.ErrChallengeNotFound
	}
	return c.attemptID, c.code, nil
}

// RemoveCode implements store.TwoFACodeStore.
func (s *TwoFACodeStore) RemoveCode(_ context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.codes[email]; !exists {
		return store.ErrChallengeNotFound
	}
	delete(s.codes, email)
	return nil
}

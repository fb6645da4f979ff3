// Package memory provides in-process store implementations. State lives for
// the process lifetime only; intended for tests and local development.
package memory

import (
	"context"
	"sync"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
)

// UserStore is a map-backed store.UserStore. Reads proceed concurrently;
// writes take the lock exclusively.
type UserStore struct {
	mu    sync.RWMutex
	users map[domain.Email]domain.User
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[domain.Email]domain.User)}
}

// AddUser implements store.UserStore.
func (s *UserStore) AddUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return store.ErrUserAlreadyExists
	}
	s.users[user.Email] = user
	return nil
}

// GetUser implements store.UserStore.
func (s *UserStore) GetUser(_ context.Context, email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return domain.User{}, store.ErrUserNotFound
	}
	return user, nil
}

// ValidateUser implements store.UserStore.
func (s *UserStore) ValidateUser(_ context.Context, email domain.Email, password domain.Password) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return store.ErrUserNotFound
	}
	if !user.Password.Equal(password) {
		return store.ErrInvalidPassword
	}
	return nil
}

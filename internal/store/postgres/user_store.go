// Package postgres implements the durable user store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
	"github.com/0xfrait/auth-service/pkg/pg"
)

// UserStore persists accounts in the users table. Uniqueness is enforced by
// the primary key on email; concurrent signups for the same address race at
// the database, not in application code.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a store backed by the given connection pool.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// AddUser implements store.UserStore.
func (s *UserStore) AddUser(ctx context.Context, user domain.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (email, password, requires_2fa) VALUES ($1, $2, $3)`,
		user.Email.String(), user.Password.String(), user.RequiresTwoFA,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return store.ErrUserAlreadyExists
		}
		return errors.Join(store.ErrStoreFailure, err)
	}
	return nil
}

// GetUser implements store.UserStore.
func (s *UserStore) GetUser(ctx context.Context, email domain.Email) (domain.User, error) {
	var (
		rawPassword   string
		requiresTwoFA bool
	)
	err := s.pool.QueryRow(ctx,
		`SELECT password, requires_2fa FROM users WHERE email = $1`,
		email.String(),
	).Scan(&rawPassword, &requiresTwoFA)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return domain.User{}, store.ErrUserNotFound
		}
		return domain.User{}, errors.Join(store.ErrStoreFailure, err)
	}

	password, err := domain.ParsePassword(rawPassword)
	if err != nil {
		// A stored password that fails its own shape check means the row
		// was written outside this service.
		return domain.User{}, errors.Join(store.ErrStoreFailure, err)
	}

	return domain.NewUser(email, password, requiresTwoFA), nil
}

// ValidateUser implements store.UserStore.
func (s *UserStore) ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return err
	}
	if !user.Password.Equal(password) {
		return store.ErrInvalidPassword
	}
	return nil
}

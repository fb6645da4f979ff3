// Package store defines the persistence contracts of the auth service.
//
// Each contract has an in-process implementation (package memory) suitable
// for tests and single-process deployments, and a networked implementation
// (packages postgres and redisstore) selected at startup via configuration.
// All implementations of a contract are interchangeable and pass the same
// test suite.
package store

import (
	"context"
	"errors"

	"github.com/0xfrait/auth-service/internal/domain"
)

// Store-level failure modes. Implementations return these (possibly wrapped
// with a backend cause); callers branch with errors.Is.
var (
	ErrUserNotFound      = errors.New("store: user not found")
	ErrUserAlreadyExists = errors.New("store: user already exists")
	ErrInvalidPassword   = errors.New("store: invalid password")
	ErrChallengeNotFound = errors.New("store: 2fa challenge not found")

	// ErrStoreFailure wraps backend failures of the networked
	// implementations (connection loss, serialization faults). Surfaced to
	// clients as an unexpected error, never as a credential problem.
	ErrStoreFailure = errors.New("store: backend failure")
)

// UserStore is the durable record of accounts, keyed by email.
type UserStore interface {
	// AddUser inserts a user, failing with ErrUserAlreadyExists when the
	// email is taken.
	AddUser(ctx context.Context, user domain.User) error

	// GetUser returns the user for email or ErrUserNotFound.
	GetUser(ctx context.Context, email domain.Email) (domain.User, error)

	// ValidateUser succeeds only on an exact credential match. Returns
	// ErrUserNotFound for unknown emails and ErrInvalidPassword on mismatch.
	ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error
}

// BannedTokenStore is the revocation ledger for issued tokens. Networked
// implementations expire entries after the token's own validity window, so a
// ban never outlives the token it bans.
type BannedTokenStore interface {
	// AddToken records a token as revoked. Idempotent: re-banning an
	// already-banned token is not an error.
	AddToken(ctx context.Context, token string) error

	// ContainsToken reports whether token has been revoked.
	ContainsToken(ctx context.Context, token string) (bool, error)
}

// TwoFACodeStore holds at most one live challenge per email.
type TwoFACodeStore interface {
	// AddCode records a challenge, silently replacing any prior challenge
	// for the same email (last write wins).
	AddCode(ctx context.Context, email domain.Email, attemptID domain.LoginAttemptID, code domain.TwoFACode) error

	// GetCode returns the live challenge for email or ErrChallengeNotFound.
	GetCode(ctx context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error)

	// RemoveCode consumes the challenge for email, failing with
	// ErrChallengeNotFound when none is live.
	RemoveCode(ctx context.Context, email domain.Email) error
}

package domain

import "errors"

// Auth outcome taxonomy. Use-cases return exactly one of these (possibly
// wrapped with a cause); nothing else crosses the service boundary.
var (
	// ErrInvalidCredentials signals malformed input: bad email syntax or a
	// password shorter than the minimum.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUserAlreadyExists signals a signup against an already-taken email.
	ErrUserAlreadyExists = errors.New("auth: user already exists")

	// ErrIncorrectCredentials covers both unknown user and wrong password.
	// The two cases are deliberately indistinguishable to prevent account
	// enumeration.
	ErrIncorrectCredentials = errors.New("auth: incorrect credentials")

	// ErrMissingToken signals a logout request without an auth cookie.
	ErrMissingToken = errors.New("auth: missing token")

	// ErrInvalidToken covers revoked, expired, and unparsable tokens.
	// Which check failed is never surfaced.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrUnexpected signals a store or backend failure. Always wrapped with
	// the underlying cause and logged; never retried.
	ErrUnexpected = errors.New("auth: unexpected error")
)

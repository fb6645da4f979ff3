package domain

import "fmt"

// MinPasswordLength is the only shape requirement placed on passwords.
const MinPasswordLength = 8

// Password is a validated raw password. Storage and comparison are a plain
// string equality check; selecting a KDF is outside this service's scope and
// the plaintext comparison is a documented weak point of the design.
type Password struct {
	raw string
}

// ParsePassword validates raw, failing for anything shorter than
// MinPasswordLength bytes.
func ParsePassword(raw string) (Password, error) {
	if len(raw) < MinPasswordLength {
		return Password{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidCredentials, MinPasswordLength)
	}
	return Password{raw: raw}, nil
}

// Equal reports whether two passwords match exactly.
func (p Password) Equal(other Password) bool { return p.raw == other.raw }

// String returns the raw password. Needed by stores that persist it.
func (p Password) String() string { return p.raw }

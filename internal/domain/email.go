package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email is a syntactically valid email address. The zero value is invalid;
// construct via ParseEmail. Comparison is case-sensitive on the raw string.
type Email struct {
	raw string
}

// ParseEmail validates raw against standard email syntax: a non-empty local
// part, "@", and a non-empty domain. No I/O, no normalization.
func ParseEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, fmt.Errorf("%w: empty email", ErrInvalidCredentials)
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return Email{}, fmt.Errorf("%w: %q is not a valid email", ErrInvalidCredentials, raw)
	}

	local, dom, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || dom == "" {
		return Email{}, fmt.Errorf("%w: %q is not a valid email", ErrInvalidCredentials, raw)
	}

	return Email{raw: raw}, nil
}

// String returns the raw address.
func (e Email) String() string { return e.raw }

// IsZero reports whether e was constructed via ParseEmail.
func (e Email) IsZero() bool { return e.raw == "" }

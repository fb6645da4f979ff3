package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// TwoFACodeLength is the number of digits in a generated challenge code.
const TwoFACodeLength = 6

// LoginAttemptID correlates a client's verify-2fa call with the server-held
// challenge minted during login. Opaque, UUID-shaped.
type LoginAttemptID struct {
	raw string
}

// NewLoginAttemptID mints a fresh random attempt id.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID{raw: uuid.NewString()}
}

// ParseLoginAttemptID validates raw as a UUID string.
func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return LoginAttemptID{}, fmt.Errorf("%w: malformed login attempt id", ErrInvalidCredentials)
	}
	return LoginAttemptID{raw: raw}, nil
}

// String returns the raw id.
func (id LoginAttemptID) String() string { return id.raw }

// Equal reports an exact match.
func (id LoginAttemptID) Equal(other LoginAttemptID) bool { return id.raw == other.raw }

// TwoFACode is a numeric one-time code delivered to the user out-of-band.
type TwoFACode struct {
	raw string
}

// NewTwoFACode generates a random zero-padded code of TwoFACodeLength digits
// using crypto/rand.
func NewTwoFACode() TwoFACode {
	max := big.NewInt(1)
	for i := 0; i < TwoFACodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken,
		// at which point the process cannot issue credentials at all.
		panic(fmt.Sprintf("twofa: entropy source unavailable: %v", err))
	}
	return TwoFACode{raw: fmt.Sprintf("%0*d", TwoFACodeLength, n)}
}

// ParseTwoFACode validates raw as an exactly TwoFACodeLength-digit string.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != TwoFACodeLength {
		return TwoFACode{}, fmt.Errorf("%w: malformed 2FA code", ErrInvalidCredentials)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return TwoFACode{}, fmt.Errorf("%w: malformed 2FA code", ErrInvalidCredentials)
		}
	}
	return TwoFACode{raw: raw}, nil
}

// String returns the raw code.
func (c TwoFACode) String() string { return c.raw }

// Equal reports an exact match.
func (c TwoFACode) Equal(other TwoFACode) bool { return c.raw == other.raw }

// Package email defines the outbound email capability and two
// implementations: a Postmark-backed client for production and a filesystem
// sender for local development.
package email

import (
	"context"
	"errors"
)

var (
	ErrFailedToSend  = errors.New("email: failed to send")
	ErrInvalidConfig = errors.New("email: invalid config")
	ErrInvalidParams = errors.New("email: invalid params")
)

// Sender delivers a single message. Delivery is best-effort from the
// caller's perspective; retry policy belongs to the implementation or the
// provider, not to this contract.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config holds provider credentials and sender identity.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@localhost"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

func validateParams(to, subject string) error {
	if to == "" {
		return errors.Join(ErrInvalidParams, errors.New("empty recipient"))
	}
	if subject == "" {
		return errors.Join(ErrInvalidParams, errors.New("empty subject"))
	}
	return nil
}

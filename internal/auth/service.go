// Package auth composes the five authentication use-cases over the store
// contracts: signup, login, verify-2fa, logout, and verify-token. Every
// use-case is stateless per request and returns either a success payload or
// one of the domain sentinel errors; nothing else escapes this package.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
	"github.com/0xfrait/auth-service/pkg/email"
)

// emailSendTimeout bounds the fire-and-forget 2FA delivery so a stuck
// provider cannot pile up goroutines forever.
const emailSendTimeout = 30 * time.Second

// Service is the auth orchestrator. All stores are shared instances; their
// implementations own the locking discipline.
type Service struct {
	users  store.UserStore
	twoFA  store.TwoFACodeStore
	tokens *TokenService
	mailer email.Sender
	log    *slog.Logger
}

// NewService wires the orchestrator. A nil logger falls back to the default.
func NewService(users store.UserStore, twoFA store.TwoFACodeStore, tokens *TokenService, mailer email.Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users:  users,
		twoFA:  twoFA,
		tokens: tokens,
		mailer: mailer,
		log:    log,
	}
}

// LoginResult is the outcome of a successful Login call. Exactly one of the
// two shapes is populated: a token when no second factor is required, or an
// attempt id the client must echo back to VerifyTwoFactor. The code itself
// never appears in the response.
type LoginResult struct {
	TwoFARequired  bool
	SignedToken    string
	LoginAttemptID string
}

// Signup registers a new account.
func (s *Service) Signup(ctx context.Context, rawEmail, rawPassword string, requiresTwoFA bool) error {
	emailAddr, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return domain.ErrInvalidCredentials
	}
	password, err := domain.ParsePassword(rawPassword)
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.users.GetUser(ctx, emailAddr); err == nil {
		return domain.ErrUserAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return s.unexpected(ctx, "signup: user lookup failed", err)
	}

	if err := s.users.AddUser(ctx, domain.NewUser(emailAddr, password, requiresTwoFA)); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return domain.ErrUserAlreadyExists
		}
		return s.unexpected(ctx, "signup: user insert failed", err)
	}
	return nil
}

// Login validates credentials and either issues a token or, for accounts
// requiring a second factor, records a challenge and emails its code.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (LoginResult, error) {
	emailAddr, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	password, err := domain.ParsePassword(rawPassword)
	if err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	if err := s.users.ValidateUser(ctx, emailAddr, password); err != nil {
		// Unknown user and wrong password are indistinguishable by design.
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrInvalidPassword) {
			return LoginResult{}, domain.ErrIncorrectCredentials
		}
		return LoginResult{}, s.unexpected(ctx, "login: credential check failed", err)
	}

	user, err := s.users.GetUser(ctx, emailAddr)
	if err != nil {
		return LoginResult{}, s.unexpected(ctx, "login: user lookup failed", err)
	}

	if user.RequiresTwoFA {
		return s.startTwoFAChallenge(ctx, emailAddr)
	}

	token, err := s.tokens.Issue(emailAddr)
	if err != nil {
		return LoginResult{}, s.unexpected(ctx, "login: token issuance failed", err)
	}
	return LoginResult{SignedToken: token}, nil
}

// startTwoFAChallenge mints and records a challenge, replacing any prior one
// for the email, then emails the code. Delivery is fire-and-forget with
// respect to the response: the challenge stands even when the provider
// fails, and the failure is logged with its full chain.
func (s *Service) startTwoFAChallenge(ctx context.Context, emailAddr domain.Email) (LoginResult, error) {
	attemptID := domain.NewLoginAttemptID()
	code := domain.NewTwoFACode()

	if err := s.twoFA.AddCode(ctx, emailAddr, attemptID, code); err != nil {
		return LoginResult{}, s.unexpected(ctx, "login: challenge store failed", err)
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emailSendTimeout)
		defer cancel()

		body := fmt.Sprintf("Your 2FA code is: %s", code.String())
		if err := s.mailer.Send(sendCtx, emailAddr.String(), "2FA Code", body); err != nil {
			s.log.ErrorContext(sendCtx, "2fa code delivery failed",
				slog.String("email", emailAddr.String()),
				slog.Any("error", err),
			)
		}
	}()

	return LoginResult{TwoFARequired: true, LoginAttemptID: attemptID.String()}, nil
}

// VerifyTwoFactor completes a pending challenge. The attempt id and code
// must both match exactly; the challenge is consumed on success, so a replay
// of the same pair fails.
func (s *Service) VerifyTwoFactor(ctx context.Context, rawEmail, rawAttemptID, rawCode string) (string, error) {
	emailAddr, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	attemptID, err := domain.ParseLoginAttemptID(rawAttemptID)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	code, err := domain.ParseTwoFACode(rawCode)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	storedID, storedCode, err := s.twoFA.GetCode(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			return "", domain.ErrIncorrectCredentials
		}
		return "", s.unexpected(ctx, "verify-2fa: challenge lookup failed", err)
	}

	if !storedID.Equal(attemptID) || !storedCode.Equal(code) {
		return "", domain.ErrIncorrectCredentials
	}

	if err := s.twoFA.RemoveCode(ctx, emailAddr); err != nil {
		if errors.Is(err, store.ErrChallengeNotFound) {
			// A concurrent verify consumed the challenge first.
			return "", domain.ErrIncorrectCredentials
		}
		return "", s.unexpected(ctx, "verify-2fa: challenge consumption failed", err)
	}

	token, err := s.tokens.Issue(emailAddr)
	if err != nil {
		return "", s.unexpected(ctx, "verify-2fa: token issuance failed", err)
	}
	return token, nil
}

// Logout revokes the presented token. The transport maps an absent cookie to
// ErrMissingToken before calling; an empty token is treated the same way.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}

	if _, err := s.tokens.Validate(ctx, token); err != nil {
		if errors.Is(err, domain.ErrUnexpected) {
			return s.unexpected(ctx, "logout: token validation failed", err)
		}
		return domain.ErrInvalidToken
	}

	if err := s.tokens.Revoke(ctx, token); err != nil {
		return s.unexpected(ctx, "logout: token revocation failed", err)
	}
	return nil
}

// VerifyToken reports whether token is currently honored. Pure read.
func (s *Service) VerifyToken(ctx context.Context, token string) (Claims, error) {
	claims, err := s.tokens.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnexpected) {
			return Claims{}, s.unexpected(ctx, "verify-token: validation failed", err)
		}
		return Claims{}, domain.ErrInvalidToken
	}
	return claims, nil
}

// unexpected logs the full causal chain and returns the wrapped sentinel.
// Unexpected errors are never retried here.
func (s *Service) unexpected(ctx context.Context, msg string, err error) error {
	s.log.ErrorContext(ctx, msg, slog.Any("error", err))
	if errors.Is(err, domain.ErrUnexpected) {
		return err
	}
	return errors.Join(domain.ErrUnexpected, err)
}

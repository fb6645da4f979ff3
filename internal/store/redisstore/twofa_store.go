package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xfrait/auth-service/internal/domain"
	"github.com/0xfrait/auth-service/internal/store"
)

const twoFACodeKeyPrefix = "two_fa_code:"

// ChallengeTTL bounds how long a 2FA challenge stays verifiable.
const ChallengeTTL = 10 * time.Minute

// challengeRecord is the serialized (attempt id, code) pair stored under one
// key so both values expire together.
type challengeRecord struct {
	AttemptID string `json:"attempt_id"`
	Code      string `json:"code"`
}

// TwoFACodeStore keeps the single live challenge per email with a
// ChallengeTTL expiry.
type TwoFACodeStore struct {
	client redis.UniversalClient
}

// NewTwoFACodeStore creates a redis-backed challenge store.
func NewTwoFACodeStore(client redis.UniversalClient) *TwoFACodeStore {
	return &TwoFACodeStore{client: client}
}

// AddCode implements store.TwoFACodeStore. SET replaces any prior challenge
// for the email, which is exactly the last-write-wins contract.
func (s *TwoFACodeStore) AddCode(ctx context.Context, email domain.Email, attemptID domain.LoginAttemptID, code domain.TwoFACode) error {
	payload, err := json.Marshal(challengeRecord{
		AttemptID: attemptID.String(),
		Code:      code.String(),
	})
	if err != nil {
		return errors.Join(store.ErrStoreFailure, err)
	}

	if err := s.client.Set(ctx, twoFACodeKeyPrefix+email.String(), payload, ChallengeTTL).Err(); err != nil {
		return errors.Join(store.ErrStoreFailure, err)
	}
	return nil
}

// GetCode implements store.TwoFACodeStore.
func (s *TwoFACodeStore) GetCode(ctx context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	payload, err := s.client.Get(ctx, twoFACodeKeyPrefix+email.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.LoginAttemptID{}, domain.TwoFACode{}, store.ErrChallengeNotFound
		}
		return domain.LoginAttemptID{}, domain.TwoFACode{}, errors.Join(store.ErrStoreFailure, err)
	}

	var record challengeRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, errors.Join(store.ErrStoreFailure, err)
	}

	attemptID, err := domain.ParseLoginAttemptID(record.AttemptID)
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, errors.Join(store.ErrStoreFailure, err)
	}
	code, err := domain.ParseTwoFACode(record.Code)
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, errors.Join(store.ErrStoreFailure, err)
	}

	return attemptID, code, nil
}

// RemoveCode implements store.TwoFACodeStore.
func (s *TwoFACodeStore) RemoveCode(ctx context.Context, email domain.Email) error {
	n, err := s.client.Del(ctx, twoFACodeKeyPrefix+email.String()).Result()
	if err != nil {
		return errors.Join(store.ErrStoreFailure, err)
	}
	if n == 0 {
		return store.ErrChallengeNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omxqn/api-application/domain"
)

// OTPRepositoryImpl implements domain.OTPStore using Redis. Each account
// has a single key, so storing a new entry atomically replaces any prior
// one. The Redis TTL is kept longer than the code's validity window so an
// expired-but-present code can be reported as Expired rather than
// NotFound; the TTL only garbage-collects abandoned entries.
type OTPRepositoryImpl struct {
	client *redis.Client
	prefix string
	grace  time.Duration
}

// NewOTPRepository creates a new Redis-backed OTP store
func NewOTPRepository(client *redis.Client) domain.OTPStore {
	return &OTPRepositoryImpl{
		client: client,
		prefix: "otp:",
		grace:  10 * time.Minute,
	}
}

func (r *OTPRepositoryImpl) key(accountID uint) string {
	return fmt.Sprintf("%s%d", r.prefix, accountID)
}

// Replace implements domain.OTPStore
func (r *OTPRepositoryImpl) Replace(ctx context.Context, entry *domain.OTPEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal otp entry: %w", err)
	}

	ttl := time.Until(entry.ExpiresAt) + r.grace
	return r.client.Set(ctx, r.key(entry.AccountID), data, ttl).Err()
}

// Find implements domain.OTPStore
func (r *OTPRepositoryImpl) Find(ctx context.Context, accountID uint) (*domain.OTPEntry, error) {
	data, err := r.client.Get(ctx, r.key(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var entry domain.OTPEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp entry: %w", err)
	}
	return &entry, nil
}

// Delete implements domain.OTPStore
func (r *OTPRepositoryImpl) Delete(ctx context.Context, accountID uint) error {
	return r.client.Del(ctx, r.key(accountID)).Err()
}

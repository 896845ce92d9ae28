package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	store    domain.OTPStore
	notifier domain.NotificationService
	config   OTPConfig
	log      *zap.Logger
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(store domain.OTPStore, notifier domain.NotificationService, config OTPConfig, log *zap.Logger) domain.OTPService {
	return &OTPServiceImpl{
		store:    store,
		notifier: notifier,
		config:   config,
		log:      log,
	}
}

// Issue implements domain.OTPService. Storing the new entry replaces any
// prior one, so at most one code is outstanding per account. When
// delivery fails the stored code is rolled back and the caller may retry,
// which reissues cleanly.
func (s *OTPServiceImpl) Issue(ctx context.Context, account *domain.Account, channel domain.Channel) (*domain.OTPEntry, error) {
	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	entry := &domain.OTPEntry{
		AccountID: account.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	if err := s.store.Replace(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	switch channel {
	case domain.ChannelPhone:
		err = s.notifier.SendSMS(account.Phone, message)
	case domain.ChannelEmail:
		err = s.notifier.SendEmail(account.Email, "Your verification code", message)
	default:
		err = domain.ErrContactRequired
	}
	if err != nil {
		if delErr := s.store.Delete(ctx, account.ID); delErr != nil {
			s.log.Warn("failed to roll back otp after delivery failure",
				zap.Uint("account_id", account.ID), zap.Error(delErr))
		}
		if err == domain.ErrContactRequired {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.log.Info("otp issued", zap.Uint("account_id", account.ID), zap.String("channel", string(channel)))
	return entry, nil
}

// Validate implements domain.OTPService. The code is single use: a
// successful validation deletes the entry, so a repeat submission fails
// with ErrOTPNotFound.
func (s *OTPServiceImpl) Validate(ctx context.Context, accountID uint, code string) error {
	entry, err := s.store.Find(ctx, accountID)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) != 1 {
		return domain.ErrOTPInvalid
	}

	if entry.Expired(time.Now()) {
		return domain.ErrOTPExpired
	}

	if err := s.store.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

// generateSecureCode generates a fixed-width numeric code from a CSPRNG.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

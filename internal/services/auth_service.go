package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accounts domain.AccountRepository
	otpSvc   domain.OTPService
	tokenSvc domain.TokenService
	log      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts domain.AccountRepository,
	otpSvc domain.OTPService,
	tokenSvc domain.TokenService,
	log *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		accounts: accounts,
		otpSvc:   otpSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// resolveByContact finds the account matching exactly one of email or
// phone, and reports which channel the caller authenticated with.
func (s *AuthServiceImpl) resolveByContact(ctx context.Context, email, phone string) (*domain.Account, domain.Channel, error) {
	if (email == "") == (phone == "") {
		return nil, "", domain.ErrContactRequired
	}

	if email != "" {
		account, err := s.accounts.FindByEmail(ctx, email)
		return account, domain.ChannelEmail, err
	}
	account, err := s.accounts.FindByPhone(ctx, phone)
	return account, domain.ChannelPhone, err
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, phone string) (uint, error) {
	account, channel, err := s.resolveByContact(ctx, email, phone)
	if err != nil {
		return 0, err
	}

	if _, err := s.otpSvc.Issue(ctx, account, channel); err != nil {
		return 0, err
	}
	return account.ID, nil
}

// ValidateOTP implements domain.AuthService. A successful validation
// consumes the code and mints a fresh session token, which replaces (and
// so invalidates) any previously issued one.
func (s *AuthServiceImpl) ValidateOTP(ctx context.Context, email, phone, code string) (*domain.AuthResult, error) {
	account, _, err := s.resolveByContact(ctx, email, phone)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Validate(ctx, account.ID, code); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.Mint(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}
	if err := s.accounts.UpdateSessionToken(ctx, account.ID, token); err != nil {
		return nil, err
	}
	account.SessionToken = token

	s.log.Info("login", zap.Uint("account_id", account.ID))

	return &domain.AuthResult{
		Account:      account,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

// Authenticate implements domain.AuthService. A presented token is valid
// only while it both verifies cryptographically and equals the single
// token stored on the account, which is what makes logout and re-login
// revoke all earlier tokens.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := s.tokenSvc.Parse(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(account.SessionToken), []byte(token)) != 1 {
		return nil, domain.ErrTokenRevoked
	}

	return account, nil
}

// Logout implements domain.AuthService. Idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, accountID uint) error {
	if err := s.accounts.UpdateSessionToken(ctx, accountID, ""); err != nil {
		return err
	}
	s.log.Info("logout", zap.Uint("account_id", accountID))
	return nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, accountID uint) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

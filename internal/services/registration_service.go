package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// RegistrationServiceImpl implements domain.RegistrationService.
// Onboarding advances anonymous -> basic account -> role selected ->
// role profile complete; only the last step mints a session token.
type RegistrationServiceImpl struct {
	accounts domain.AccountRepository
	profiles domain.ProfileRepository
	tokenSvc domain.TokenService
	log      *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	accounts domain.AccountRepository,
	profiles domain.ProfileRepository,
	tokenSvc domain.TokenService,
	log *zap.Logger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		accounts: accounts,
		profiles: profiles,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// CreateBasicAccount implements domain.RegistrationService
func (s *RegistrationServiceImpl) CreateBasicAccount(ctx context.Context, username, email, phone, firstName, lastName string) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByIdentity(ctx, username, email, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check account identity: %w", err)
	}
	if exists {
		return nil, domain.ErrAccountExists
	}

	account := &domain.Account{
		Username:     username,
		Email:        email,
		Phone:        phone,
		FirstName:    firstName,
		LastName:     lastName,
		RegisterType: domain.RegisterTypeUnset,
		RegisterStep: domain.RegisterStepNone,
		SystemRole:   domain.SystemRoleUser,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("account created", zap.Uint("account_id", account.ID), zap.String("username", username))
	return account, nil
}

// SetRegisterType implements domain.RegistrationService. The write is
// idempotent.
func (s *RegistrationServiceImpl) SetRegisterType(ctx context.Context, accountID uint, t domain.RegisterType) error {
	if !domain.ValidRegisterType(t) {
		return domain.ErrInvalidRegisterType
	}
	return s.accounts.UpdateRegisterType(ctx, accountID, t)
}

// CompleteRoleProfile implements domain.RegistrationService. The account
// must already exist via CreateBasicAccount; a second completion for the
// same account fails with ErrProfileExists.
func (s *RegistrationServiceImpl) CompleteRoleProfile(ctx context.Context, accountID uint, t domain.RegisterType) (*domain.AuthResult, error) {
	if !domain.ValidRegisterType(t) {
		return nil, domain.ErrInvalidRegisterType
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := &domain.RoleProfile{AccountID: accountID}
	var step domain.RegisterStep

	switch t {
	case domain.RegisterTypeCaptain:
		if err := s.profiles.CreateDriver(ctx, profile); err != nil {
			return nil, err
		}
		step = domain.RegisterStepDriverDone
	case domain.RegisterTypeBusOwner:
		if err := s.profiles.CreateOwner(ctx, profile); err != nil {
			return nil, err
		}
		step = domain.RegisterStepBusOwnerDone
	case domain.RegisterTypeBoth:
		// One transaction, so a transient failure never strands a lone
		// driver row that would make every retry conflict.
		if err := s.profiles.CreateBoth(ctx, profile, &domain.RoleProfile{AccountID: accountID}); err != nil {
			return nil, err
		}
		step = domain.RegisterStepBusOwnerDone
	}

	if err := s.accounts.UpdateRegisterType(ctx, accountID, t); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateRegisterStep(ctx, accountID, step); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.Mint(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}
	if err := s.accounts.UpdateSessionToken(ctx, accountID, token); err != nil {
		return nil, err
	}

	account.RegisterType = t
	account.RegisterStep = step
	account.SessionToken = token

	s.log.Info("role profile completed",
		zap.Uint("account_id", accountID), zap.String("register_type", string(t)))

	return &domain.AuthResult{
		Account:      account,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// AuthzServiceImpl implements domain.AuthorizationService. RequireRole is
// a pure function of the account already resolved by Authenticate, so
// authentication and authorization never read state at different times.
type AuthzServiceImpl struct {
	accounts domain.AccountRepository
	log      *zap.Logger
}

// NewAuthzService creates a new authorization service
func NewAuthzService(accounts domain.AccountRepository, log *zap.Logger) domain.AuthorizationService {
	return &AuthzServiceImpl{accounts: accounts, log: log}
}

// RequireRole implements domain.AuthorizationService
func (s *AuthzServiceImpl) RequireRole(account *domain.Account, min domain.SystemRole) error {
	minRank := domain.RoleRank(min)
	if minRank == 0 {
		return domain.ErrRoleUnknown
	}

	rank := domain.RoleRank(account.SystemRole)
	if rank == 0 {
		return domain.ErrRoleUnknown
	}

	if rank < minRank {
		s.log.Warn("access denied",
			zap.Uint("account_id", account.ID),
			zap.String("role", string(account.SystemRole)),
			zap.String("required", string(min)))
		return domain.ErrInsufficientRole
	}
	return nil
}

// SetSystemRole implements domain.AuthorizationService
func (s *AuthzServiceImpl) SetSystemRole(ctx context.Context, accountID uint, role domain.SystemRole) error {
	if domain.RoleRank(role) == 0 {
		return domain.ErrRoleUnknown
	}
	if err := s.accounts.UpdateSystemRole(ctx, accountID, role); err != nil {
		return err
	}
	s.log.Info("system role changed", zap.Uint("account_id", accountID), zap.String("role", string(role)))
	return nil
}

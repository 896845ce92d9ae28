package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// DocumentServiceImpl implements domain.DocumentService
type DocumentServiceImpl struct {
	accounts domain.AccountRepository
	profiles domain.ProfileRepository
	log      *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(accounts domain.AccountRepository, profiles domain.ProfileRepository, log *zap.Logger) domain.DocumentService {
	return &DocumentServiceImpl{accounts: accounts, profiles: profiles, log: log}
}

// Attach implements domain.DocumentService. The account's register type
// selects which profile table receives the document reference.
func (s *DocumentServiceImpl) Attach(ctx context.Context, accountID uint, kind domain.DocumentKind, ref string) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.profiles.SetDocument(ctx, accountID, account.RegisterType, kind, ref); err != nil {
		return err
	}

	s.log.Info("document attached",
		zap.Uint("account_id", accountID), zap.String("kind", string(kind)))
	return nil
}

// Profiles implements domain.DocumentService. The register type decides
// which tables are consulted; a profile row that was never created is
// reported as nil.
func (s *DocumentServiceImpl) Profiles(ctx context.Context, account *domain.Account) (*domain.RoleProfile, *domain.RoleProfile, error) {
	var driver, owner *domain.RoleProfile

	if account.RegisterType == domain.RegisterTypeCaptain || account.RegisterType == domain.RegisterTypeBoth {
		p, err := s.profiles.FindDriver(ctx, account.ID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, err
		}
		driver = p
	}
	if account.RegisterType == domain.RegisterTypeBusOwner || account.RegisterType == domain.RegisterTypeBoth {
		p, err := s.profiles.FindOwner(ctx, account.ID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, err
		}
		owner = p
	}
	return driver, owner, nil
}

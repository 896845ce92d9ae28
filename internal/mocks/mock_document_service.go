package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockDocumentService implements domain.DocumentService interface for testing
type MockDocumentService struct {
	AttachFunc   func(ctx context.Context, accountID uint, kind domain.DocumentKind, ref string) error
	ProfilesFunc func(ctx context.Context, account *domain.Account) (*domain.RoleProfile, *domain.RoleProfile, error)
}

// NewMockDocumentService creates a new MockDocumentService with default behaviors
func NewMockDocumentService() *MockDocumentService {
	return &MockDocumentService{}
}

// Attach stores a document reference on the active role profile
func (m *MockDocumentService) Attach(ctx context.Context, accountID uint, kind domain.DocumentKind, ref string) error {
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx, accountID, kind, ref)
	}
	// Default behavior: success
	return nil
}

// Profiles resolves the account's role profiles
func (m *MockDocumentService) Profiles(ctx context.Context, account *domain.Account) (*domain.RoleProfile, *domain.RoleProfile, error) {
	if m.ProfilesFunc != nil {
		return m.ProfilesFunc(ctx, account)
	}
	// Default behavior: no profiles
	return nil, nil, nil
}

// Compile-time interface compliance verification
var _ domain.DocumentService = (*MockDocumentService)(nil)

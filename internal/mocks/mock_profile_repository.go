package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockProfileRepository implements domain.ProfileRepository interface for testing
type MockProfileRepository struct {
	CreateDriverFunc func(ctx context.Context, profile *domain.RoleProfile) error
	CreateOwnerFunc  func(ctx context.Context, profile *domain.RoleProfile) error
	CreateBothFunc   func(ctx context.Context, driver, owner *domain.RoleProfile) error
	FindDriverFunc   func(ctx context.Context, accountID uint) (*domain.RoleProfile, error)
	FindOwnerFunc    func(ctx context.Context, accountID uint) (*domain.RoleProfile, error)
	SetDocumentFunc  func(ctx context.Context, accountID uint, t domain.RegisterType, kind domain.DocumentKind, ref string) error
}

// NewMockProfileRepository creates a new MockProfileRepository with default behaviors
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

// CreateDriver creates a driver profile
func (m *MockProfileRepository) CreateDriver(ctx context.Context, profile *domain.RoleProfile) error {
	if m.CreateDriverFunc != nil {
		return m.CreateDriverFunc(ctx, profile)
	}
	// Default behavior: success
	return nil
}

// CreateOwner creates an owner profile
func (m *MockProfileRepository) CreateOwner(ctx context.Context, profile *domain.RoleProfile) error {
	if m.CreateOwnerFunc != nil {
		return m.CreateOwnerFunc(ctx, profile)
	}
	// Default behavior: success
	return nil
}

// CreateBoth creates driver and owner profiles atomically
func (m *MockProfileRepository) CreateBoth(ctx context.Context, driver, owner *domain.RoleProfile) error {
	if m.CreateBothFunc != nil {
		return m.CreateBothFunc(ctx, driver, owner)
	}
	// Default behavior: success
	return nil
}

// FindDriver finds a driver profile by account ID
func (m *MockProfileRepository) FindDriver(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
	if m.FindDriverFunc != nil {
		return m.FindDriverFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// FindOwner finds an owner profile by account ID
func (m *MockProfileRepository) FindOwner(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
	if m.FindOwnerFunc != nil {
		return m.FindOwnerFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// SetDocument stores a document reference on the matching profile
func (m *MockProfileRepository) SetDocument(ctx context.Context, accountID uint, t domain.RegisterType, kind domain.DocumentKind, ref string) error {
	if m.SetDocumentFunc != nil {
		return m.SetDocumentFunc(ctx, accountID, t, kind, ref)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProfileRepository = (*MockProfileRepository)(nil)

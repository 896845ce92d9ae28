package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc             func(ctx context.Context, account *domain.Account) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Account, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.Account, error)
	FindByPhoneFunc        func(ctx context.Context, phone string) (*domain.Account, error)
	ExistsByIdentityFunc   func(ctx context.Context, username, email, phone string) (bool, error)
	UpdateSessionTokenFunc func(ctx context.Context, id uint, token string) error
	UpdateRegisterTypeFunc func(ctx context.Context, id uint, t domain.RegisterType) error
	UpdateRegisterStepFunc func(ctx context.Context, id uint, step domain.RegisterStep) error
	UpdateSystemRoleFunc   func(ctx context.Context, id uint, role domain.SystemRole) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByPhone finds an account by phone number
func (m *MockAccountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// ExistsByIdentity checks the combined uniqueness of username, email and phone
func (m *MockAccountRepository) ExistsByIdentity(ctx context.Context, username, email, phone string) (bool, error) {
	if m.ExistsByIdentityFunc != nil {
		return m.ExistsByIdentityFunc(ctx, username, email, phone)
	}
	// Default behavior: identity is free
	return false, nil
}

// UpdateSessionToken overwrites the stored session token
func (m *MockAccountRepository) UpdateSessionToken(ctx context.Context, id uint, token string) error {
	if m.UpdateSessionTokenFunc != nil {
		return m.UpdateSessionTokenFunc(ctx, id, token)
	}
	// Default behavior: success
	return nil
}

// UpdateRegisterType updates the account's register type
func (m *MockAccountRepository) UpdateRegisterType(ctx context.Context, id uint, t domain.RegisterType) error {
	if m.UpdateRegisterTypeFunc != nil {
		return m.UpdateRegisterTypeFunc(ctx, id, t)
	}
	// Default behavior: success
	return nil
}

// UpdateRegisterStep updates the account's register step
func (m *MockAccountRepository) UpdateRegisterStep(ctx context.Context, id uint, step domain.RegisterStep) error {
	if m.UpdateRegisterStepFunc != nil {
		return m.UpdateRegisterStepFunc(ctx, id, step)
	}
	// Default behavior: success
	return nil
}

// UpdateSystemRole updates the account's system role
func (m *MockAccountRepository) UpdateSystemRole(ctx context.Context, id uint, role domain.SystemRole) error {
	if m.UpdateSystemRoleFunc != nil {
		return m.UpdateSystemRoleFunc(ctx, id, role)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)

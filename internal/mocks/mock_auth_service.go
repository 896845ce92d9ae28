package mocks

import (
	"context"
	"time"

	"github.com/omxqn/api-application/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, email, phone string) (uint, error)
	ValidateOTPFunc  func(ctx context.Context, email, phone, code string) (*domain.AuthResult, error)
	AuthenticateFunc func(ctx context.Context, token string) (*domain.Account, error)
	LogoutFunc       func(ctx context.Context, accountID uint) error
	ProfileFunc      func(ctx context.Context, accountID uint) (*domain.Account, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login issues an OTP for the matching account
func (m *MockAuthService) Login(ctx context.Context, email, phone string) (uint, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, phone)
	}
	// Default behavior: account 1
	return 1, nil
}

// ValidateOTP verifies a code and opens a session
func (m *MockAuthService) ValidateOTP(ctx context.Context, email, phone, code string) (*domain.AuthResult, error) {
	if m.ValidateOTPFunc != nil {
		return m.ValidateOTPFunc(ctx, email, phone, code)
	}
	// Default behavior: session for account 1
	return &domain.AuthResult{
		Account:      &domain.Account{ID: 1, SystemRole: domain.SystemRoleUser},
		SessionToken: "mock-session-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil
}

// Authenticate resolves a bearer token to its account
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	// Default behavior: account 1 with the token stored
	return &domain.Account{ID: 1, SystemRole: domain.SystemRoleUser, SessionToken: token}, nil
}

// Logout revokes the account's session
func (m *MockAuthService) Logout(ctx context.Context, accountID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}

// Profile returns the account's profile
func (m *MockAuthService) Profile(ctx context.Context, accountID uint) (*domain.Account, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, accountID)
	}
	// Default behavior: account 1
	return &domain.Account{ID: accountID, SystemRole: domain.SystemRoleUser}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)

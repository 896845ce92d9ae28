package mocks

import (
	"time"

	"github.com/omxqn/api-application/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	MintFunc  func(accountID uint) (string, time.Time, error)
	ParseFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Mint issues a session token for an account
func (m *MockTokenService) Mint(accountID uint) (string, time.Time, error) {
	if m.MintFunc != nil {
		return m.MintFunc(accountID)
	}
	// Default behavior: fixed token one hour out
	return "mock-session-token", time.Now().Add(time.Hour), nil
}

// Parse verifies a token and returns its claims
func (m *MockTokenService) Parse(token string) (*domain.TokenClaims, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(token)
	}
	// Default behavior: valid claims for account 1
	now := time.Now()
	return &domain.TokenClaims{
		AccountID: 1,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

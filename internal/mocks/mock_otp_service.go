package mocks

import (
	"context"
	"time"

	"github.com/omxqn/api-application/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc    func(ctx context.Context, account *domain.Account, channel domain.Channel) (*domain.OTPEntry, error)
	ValidateFunc func(ctx context.Context, accountID uint, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a one-time code
func (m *MockOTPService) Issue(ctx context.Context, account *domain.Account, channel domain.Channel) (*domain.OTPEntry, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, account, channel)
	}
	// Default behavior: fixed code valid five minutes
	return &domain.OTPEntry{
		AccountID: account.ID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil
}

// Validate checks a submitted code
func (m *MockOTPService) Validate(ctx context.Context, accountID uint, code string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, accountID, code)
	}
	// Default behavior: code accepted
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)

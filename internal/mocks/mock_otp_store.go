package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockOTPStore implements domain.OTPStore interface for testing
type MockOTPStore struct {
	ReplaceFunc func(ctx context.Context, entry *domain.OTPEntry) error
	FindFunc    func(ctx context.Context, accountID uint) (*domain.OTPEntry, error)
	DeleteFunc  func(ctx context.Context, accountID uint) error
}

// NewMockOTPStore creates a new MockOTPStore with default behaviors
func NewMockOTPStore() *MockOTPStore {
	return &MockOTPStore{}
}

// Replace stores a new OTP entry, discarding any prior one
func (m *MockOTPStore) Replace(ctx context.Context, entry *domain.OTPEntry) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, entry)
	}
	// Default behavior: success
	return nil
}

// Find looks up the outstanding OTP entry for an account
func (m *MockOTPStore) Find(ctx context.Context, accountID uint) (*domain.OTPEntry, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// Delete removes the OTP entry for an account
func (m *MockOTPStore) Delete(ctx context.Context, accountID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPStore = (*MockOTPStore)(nil)

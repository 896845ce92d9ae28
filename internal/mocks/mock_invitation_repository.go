package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockInvitationRepository implements domain.InvitationRepository interface for testing
type MockInvitationRepository struct {
	CreatePendingFunc         func(ctx context.Context, inv *domain.Invitation) error
	FindByIDFunc              func(ctx context.Context, id uint) (*domain.Invitation, error)
	ListPendingForInviteeFunc func(ctx context.Context, inviteeID uint) ([]domain.Invitation, error)
	UpdateStatusFunc          func(ctx context.Context, id uint, from, to domain.InvitationStatus) error
}

// NewMockInvitationRepository creates a new MockInvitationRepository with default behaviors
func NewMockInvitationRepository() *MockInvitationRepository {
	return &MockInvitationRepository{}
}

// CreatePending inserts a pending invitation
func (m *MockInvitationRepository) CreatePending(ctx context.Context, inv *domain.Invitation) error {
	if m.CreatePendingFunc != nil {
		return m.CreatePendingFunc(ctx, inv)
	}
	// Default behavior: success
	return nil
}

// FindByID finds an invitation by ID
func (m *MockInvitationRepository) FindByID(ctx context.Context, id uint) (*domain.Invitation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrInvitationNotFound
}

// ListPendingForInvitee lists pending invitations addressed to an account
func (m *MockInvitationRepository) ListPendingForInvitee(ctx context.Context, inviteeID uint) ([]domain.Invitation, error) {
	if m.ListPendingForInviteeFunc != nil {
		return m.ListPendingForInviteeFunc(ctx, inviteeID)
	}
	// Default behavior: none pending
	return nil, nil
}

// UpdateStatus transitions an invitation between statuses
func (m *MockInvitationRepository) UpdateStatus(ctx context.Context, id uint, from, to domain.InvitationStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, from, to)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.InvitationRepository = (*MockInvitationRepository)(nil)

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// InvitationServiceImpl implements domain.InvitationService
type InvitationServiceImpl struct {
	invitations domain.InvitationRepository
	accounts    domain.AccountRepository
	fleet       domain.FleetRepository
	log         *zap.Logger
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitations domain.InvitationRepository,
	accounts domain.AccountRepository,
	fleet domain.FleetRepository,
	log *zap.Logger,
) domain.InvitationService {
	return &InvitationServiceImpl{
		invitations: invitations,
		accounts:    accounts,
		fleet:       fleet,
		log:         log,
	}
}

// Create implements domain.InvitationService
func (s *InvitationServiceImpl) Create(ctx context.Context, ownerID, busID, inviteeID uint) (*domain.Invitation, error) {
	bus, err := s.fleet.FindBus(ctx, busID)
	if err != nil {
		return nil, err
	}
	if bus.OwnerID != ownerID {
		return nil, domain.ErrNotBusOwner
	}

	invitee, err := s.accounts.FindByID(ctx, inviteeID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrInviteeNotCaptain
		}
		return nil, err
	}
	if invitee.RegisterType != domain.RegisterTypeCaptain && invitee.RegisterType != domain.RegisterTypeBoth {
		return nil, domain.ErrInviteeNotCaptain
	}

	assigned, err := s.fleet.IsDriverAssigned(ctx, busID, inviteeID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, domain.ErrDriverAlreadyAssigned
	}

	inv := &domain.Invitation{
		OwnerID:   ownerID,
		BusID:     busID,
		InviteeID: inviteeID,
	}
	if err := s.invitations.CreatePending(ctx, inv); err != nil {
		return nil, err
	}

	s.log.Info("invitation created",
		zap.Uint("invitation_id", inv.ID), zap.Uint("bus_id", busID), zap.Uint("invitee_id", inviteeID))
	return inv, nil
}

// ListPending implements domain.InvitationService
func (s *InvitationServiceImpl) ListPending(ctx context.Context, inviteeID uint) ([]domain.Invitation, error) {
	return s.invitations.ListPendingForInvitee(ctx, inviteeID)
}

// Reply implements domain.InvitationService. Accepted and rejected are
// terminal; accepting appends the captain to the bus's assignment set.
func (s *InvitationServiceImpl) Reply(ctx context.Context, invitationID, inviteeID uint, accept bool) (*domain.Invitation, error) {
	inv, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	// A reply from anyone but the invitee is indistinguishable from a
	// missing invitation to the caller.
	if inv.InviteeID != inviteeID {
		return nil, domain.ErrInvitationNotFound
	}
	if inv.Status != domain.InvitationPending {
		return nil, domain.ErrInvitationNotPending
	}

	decision := domain.InvitationRejected
	if accept {
		decision = domain.InvitationAccepted
	}

	if err := s.invitations.UpdateStatus(ctx, invitationID, domain.InvitationPending, decision); err != nil {
		return nil, err
	}

	if accept {
		if err := s.fleet.AssignDriver(ctx, inv.BusID, inviteeID); err != nil {
			return nil, err
		}
	}

	inv.Status = decision
	s.log.Info("invitation settled",
		zap.Uint("invitation_id", invitationID), zap.String("status", string(decision)))
	return inv, nil
}

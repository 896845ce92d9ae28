package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// InvitationRepositoryImpl implements domain.InvitationRepository using GORM
type InvitationRepositoryImpl struct {
	db *gorm.DB
}

// DBInvitation represents the database model for an invitation
type DBInvitation struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"index"`
	BusID     uint   `gorm:"index:idx_bus_invitee"`
	InviteeID uint   `gorm:"index:idx_bus_invitee"`
	Status    string `gorm:"index;size:16"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBInvitation) TableName() string { return "invitations" }

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) domain.InvitationRepository {
	return &InvitationRepositoryImpl{db: db}
}

// CreatePending implements domain.InvitationRepository. The conflict check
// and the insert run in one transaction so two concurrent invitations for
// the same (bus, invitee) pair cannot both land.
func (r *InvitationRepositoryImpl) CreatePending(ctx context.Context, inv *domain.Invitation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&DBInvitation{}).
			Where("bus_id = ? AND invitee_id = ? AND status = ?", inv.BusID, inv.InviteeID, string(domain.InvitationPending)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrInvitationExists
		}

		row := &DBInvitation{
			OwnerID:   inv.OwnerID,
			BusID:     inv.BusID,
			InviteeID: inv.InviteeID,
			Status:    string(domain.InvitationPending),
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		inv.ID = row.ID
		inv.Status = domain.InvitationPending
		return nil
	})
}

// FindByID implements domain.InvitationRepository
func (r *InvitationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Invitation, error) {
	var row DBInvitation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

// ListPendingForInvitee implements domain.InvitationRepository
func (r *InvitationRepositoryImpl) ListPendingForInvitee(ctx context.Context, inviteeID uint) ([]domain.Invitation, error) {
	var rows []DBInvitation
	err := r.db.WithContext(ctx).
		Where("invitee_id = ? AND status = ?", inviteeID, string(domain.InvitationPending)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	invitations := make([]domain.Invitation, 0, len(rows))
	for i := range rows {
		invitations = append(invitations, *r.dbToDomain(&rows[i]))
	}
	return invitations, nil
}

// UpdateStatus implements domain.InvitationRepository. The transition is a
// compare-and-swap on the status column: a reply to an already-settled
// invitation affects zero rows and fails.
func (r *InvitationRepositoryImpl) UpdateStatus(ctx context.Context, id uint, from, to domain.InvitationStatus) error {
	res := r.db.WithContext(ctx).Model(&DBInvitation{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvitationNotPending
	}
	return nil
}

func (r *InvitationRepositoryImpl) dbToDomain(row *DBInvitation) *domain.Invitation {
	return &domain.Invitation{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		BusID:     row.BusID,
		InviteeID: row.InviteeID,
		Status:    domain.InvitationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM.
// Driver and owner profiles are structurally parallel tables keyed by the
// owning account's ID.
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBDriverProfile represents the database model for a driver profile
type DBDriverProfile struct {
	AccountID     uint   `gorm:"primaryKey;autoIncrement:false"`
	PassportRef   string `gorm:"size:255"`
	IDCardRef     string `gorm:"size:255"`
	ValidPassport bool
	ValidIDCard   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DBDriverProfile) TableName() string { return "driver_profiles" }

// DBOwnerProfile represents the database model for a bus-owner profile
type DBOwnerProfile struct {
	AccountID     uint   `gorm:"primaryKey;autoIncrement:false"`
	PassportRef   string `gorm:"size:255"`
	IDCardRef     string `gorm:"size:255"`
	ValidPassport bool
	ValidIDCard   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DBOwnerProfile) TableName() string { return "owner_profiles" }

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// CreateDriver implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) CreateDriver(ctx context.Context, profile *domain.RoleProfile) error {
	row := &DBDriverProfile{
		AccountID:     profile.AccountID,
		PassportRef:   profile.PassportRef,
		IDCardRef:     profile.IDCardRef,
		ValidPassport: profile.ValidPassport,
		ValidIDCard:   profile.ValidIDCard,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProfileExists
		}
		return err
	}
	return nil
}

// CreateOwner implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) CreateOwner(ctx context.Context, profile *domain.RoleProfile) error {
	row := &DBOwnerProfile{
		AccountID:     profile.AccountID,
		PassportRef:   profile.PassportRef,
		IDCardRef:     profile.IDCardRef,
		ValidPassport: profile.ValidPassport,
		ValidIDCard:   profile.ValidIDCard,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProfileExists
		}
		return err
	}
	return nil
}

// CreateBoth implements domain.ProfileRepository. A dual-role signup
// must not leave a lone driver row behind when the owner insert fails,
// otherwise a retry would conflict forever.
func (r *ProfileRepositoryImpl) CreateBoth(ctx context.Context, driver, owner *domain.RoleProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		drow := &DBDriverProfile{
			AccountID:     driver.AccountID,
			PassportRef:   driver.PassportRef,
			IDCardRef:     driver.IDCardRef,
			ValidPassport: driver.ValidPassport,
			ValidIDCard:   driver.ValidIDCard,
		}
		if err := tx.Create(drow).Error; err != nil {
			return err
		}
		orow := &DBOwnerProfile{
			AccountID:     owner.AccountID,
			PassportRef:   owner.PassportRef,
			IDCardRef:     owner.IDCardRef,
			ValidPassport: owner.ValidPassport,
			ValidIDCard:   owner.ValidIDCard,
		}
		return tx.Create(orow).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProfileExists
		}
		return err
	}
	return nil
}

// FindDriver implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindDriver(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
	var row DBDriverProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &domain.RoleProfile{
		AccountID:     row.AccountID,
		PassportRef:   row.PassportRef,
		IDCardRef:     row.IDCardRef,
		ValidPassport: row.ValidPassport,
		ValidIDCard:   row.ValidIDCard,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// FindOwner implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindOwner(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
	var row DBOwnerProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &domain.RoleProfile{
		AccountID:     row.AccountID,
		PassportRef:   row.PassportRef,
		IDCardRef:     row.IDCardRef,
		ValidPassport: row.ValidPassport,
		ValidIDCard:   row.ValidIDCard,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// SetDocument implements domain.ProfileRepository. Captains keep documents
// on the driver table; owners (and "both") on the owner table, matching
// where uploads land for each register type.
func (r *ProfileRepositoryImpl) SetDocument(ctx context.Context, accountID uint, t domain.RegisterType, kind domain.DocumentKind, ref string) error {
	updates := map[string]interface{}{}
	switch kind {
	case domain.DocumentPassport:
		updates["passport_ref"] = ref
		updates["valid_passport"] = true
	case domain.DocumentIDCard:
		updates["id_card_ref"] = ref
		updates["valid_id_card"] = true
	default:
		return domain.ErrProfileNotFound
	}

	var res *gorm.DB
	switch t {
	case domain.RegisterTypeCaptain:
		res = r.db.WithContext(ctx).Model(&DBDriverProfile{}).Where("account_id = ?", accountID).Updates(updates)
	case domain.RegisterTypeBusOwner, domain.RegisterTypeBoth:
		res = r.db.WithContext(ctx).Model(&DBOwnerProfile{}).Where("account_id = ?", accountID).Updates(updates)
	default:
		return domain.ErrInvalidRegisterType
	}

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:64"`
	Email        string `gorm:"uniqueIndex;size:255"`
	Phone        string `gorm:"uniqueIndex;size:32"`
	FirstName    string `gorm:"size:64"`
	LastName     string `gorm:"size:64"`
	RegisterType string `gorm:"index;size:16;default:unset"`
	RegisterStep string `gorm:"size:32;default:none"`
	SystemRole   string `gorm:"index;size:16;default:user"`
	SessionToken string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountExists
		}
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByPhone implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// ExistsByIdentity implements domain.AccountRepository
func (r *AccountRepositoryImpl) ExistsByIdentity(ctx context.Context, username, email, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("username = ? OR email = ? OR phone = ?", username, email, phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateSessionToken implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdateSessionToken(ctx context.Context, id uint, token string) error {
	return r.updateColumn(ctx, id, "session_token", token)
}

// UpdateRegisterType implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdateRegisterType(ctx context.Context, id uint, t domain.RegisterType) error {
	return r.updateColumn(ctx, id, "register_type", string(t))
}

// UpdateRegisterStep implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdateRegisterStep(ctx context.Context, id uint, step domain.RegisterStep) error {
	return r.updateColumn(ctx, id, "register_step", string(step))
}

// UpdateSystemRole implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdateSystemRole(ctx context.Context, id uint, role domain.SystemRole) error {
	return r.updateColumn(ctx, id, "system_role", string(role))
}

func (r *AccountRepositoryImpl) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Phone:        account.Phone,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		RegisterType: string(account.RegisterType),
		RegisterStep: string(account.RegisterStep),
		SystemRole:   string(account.SystemRole),
		SessionToken: account.SessionToken,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:           dbAccount.ID,
		Username:     dbAccount.Username,
		Email:        dbAccount.Email,
		Phone:        dbAccount.Phone,
		FirstName:    dbAccount.FirstName,
		LastName:     dbAccount.LastName,
		RegisterType: domain.RegisterType(dbAccount.RegisterType),
		RegisterStep: domain.RegisterStep(dbAccount.RegisterStep),
		SystemRole:   domain.SystemRole(dbAccount.SystemRole),
		SessionToken: dbAccount.SessionToken,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}

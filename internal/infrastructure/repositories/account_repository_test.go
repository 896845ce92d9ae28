package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func testAccount() *domain.Account {
	return &domain.Account{
		Username:     "ahmed",
		Email:        "ahmed@example.com",
		Phone:        "+96891234567",
		FirstName:    "Ahmed",
		LastName:     "Said",
		RegisterType: domain.RegisterTypeUnset,
		RegisterStep: domain.RegisterStepNone,
		SystemRole:   domain.SystemRoleUser,
	}
}

func TestAccountRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t, &DBAccount{})
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := testAccount()
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID == 0 {
		t.Error("expected the generated id to be written back")
	}

	t.Run("duplicate email maps to ErrAccountExists", func(t *testing.T) {
		dup := testAccount()
		dup.Username = "other"
		dup.Phone = "+96899999999"
		if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrAccountExists) {
			t.Fatalf("expected ErrAccountExists, got %v", err)
		}
	})

	t.Run("duplicate username maps to ErrAccountExists", func(t *testing.T) {
		dup := testAccount()
		dup.Email = "other@example.com"
		dup.Phone = "+96898888888"
		if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrAccountExists) {
			t.Fatalf("expected ErrAccountExists, got %v", err)
		}
	})
}

func TestAccountRepositoryImpl_Find(t *testing.T) {
	db := setupTestDB(t, &DBAccount{})
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := testAccount()
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name          string
		find          func() (*domain.Account, error)
		expectedError error
	}{
		{name: "by id", find: func() (*domain.Account, error) { return repo.FindByID(ctx, account.ID) }},
		{name: "by email", find: func() (*domain.Account, error) { return repo.FindByEmail(ctx, "ahmed@example.com") }},
		{name: "by phone", find: func() (*domain.Account, error) { return repo.FindByPhone(ctx, "+96891234567") }},
		{
			name:          "missing id",
			find:          func() (*domain.Account, error) { return repo.FindByID(ctx, 999) },
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:          "missing email",
			find:          func() (*domain.Account, error) { return repo.FindByEmail(ctx, "nobody@example.com") },
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.find()
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil && got.Username != "ahmed" {
				t.Errorf("unexpected account %+v", got)
			}
		})
	}
}

func TestAccountRepositoryImpl_ExistsByIdentity(t *testing.T) {
	db := setupTestDB(t, &DBAccount{})
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testAccount()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
		phone    string
		want     bool
	}{
		{name: "all free", username: "fatma", email: "fatma@example.com", phone: "+96890000000", want: false},
		{name: "username taken", username: "ahmed", email: "fatma@example.com", phone: "+96890000000", want: true},
		{name: "email taken", username: "fatma", email: "ahmed@example.com", phone: "+96890000000", want: true},
		{name: "phone taken", username: "fatma", email: "fatma@example.com", phone: "+96891234567", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsByIdentity(ctx, tt.username, tt.email, tt.phone)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("exists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccountRepositoryImpl_Updates(t *testing.T) {
	db := setupTestDB(t, &DBAccount{})
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := testAccount()
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.UpdateRegisterType(ctx, account.ID, domain.RegisterTypeCaptain); err != nil {
		t.Fatalf("update register type: %v", err)
	}
	if err := repo.UpdateRegisterStep(ctx, account.ID, domain.RegisterStepDriverDone); err != nil {
		t.Fatalf("update register step: %v", err)
	}
	if err := repo.UpdateSystemRole(ctx, account.ID, domain.SystemRoleAdmin); err != nil {
		t.Fatalf("update system role: %v", err)
	}
	if err := repo.UpdateSessionToken(ctx, account.ID, "tok-1"); err != nil {
		t.Fatalf("update session token: %v", err)
	}

	got, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.RegisterType != domain.RegisterTypeCaptain || got.RegisterStep != domain.RegisterStepDriverDone {
		t.Errorf("onboarding columns not persisted: %+v", got)
	}
	if got.SystemRole != domain.SystemRoleAdmin {
		t.Errorf("system role not persisted: %s", got.SystemRole)
	}
	if got.SessionToken != "tok-1" {
		t.Errorf("session token not persisted: %q", got.SessionToken)
	}

	t.Run("clearing the token persists an empty value", func(t *testing.T) {
		if err := repo.UpdateSessionToken(ctx, account.ID, ""); err != nil {
			t.Fatalf("clear token: %v", err)
		}
		got, err := repo.FindByID(ctx, account.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if got.SessionToken != "" {
			t.Errorf("expected empty token, got %q", got.SessionToken)
		}
	})

	t.Run("updates on a missing account fail", func(t *testing.T) {
		if err := repo.UpdateSessionToken(ctx, 999, "tok"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/omxqn/api-application/domain"
)

func TestProfileRepositoryImpl_CreateBoth(t *testing.T) {
	db := setupTestDB(t, &DBDriverProfile{}, &DBOwnerProfile{})
	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("creates driver and owner rows together", func(t *testing.T) {
		if err := repo.CreateBoth(ctx, &domain.RoleProfile{AccountID: 1}, &domain.RoleProfile{AccountID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindDriver(ctx, 1); err != nil {
			t.Errorf("driver profile should exist: %v", err)
		}
		if _, err := repo.FindOwner(ctx, 1); err != nil {
			t.Errorf("owner profile should exist: %v", err)
		}
	})

	t.Run("owner conflict rolls back the driver row", func(t *testing.T) {
		if err := repo.CreateOwner(ctx, &domain.RoleProfile{AccountID: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := repo.CreateBoth(ctx, &domain.RoleProfile{AccountID: 2}, &domain.RoleProfile{AccountID: 2})
		if !errors.Is(err, domain.ErrProfileExists) {
			t.Fatalf("expected ErrProfileExists, got %v", err)
		}
		if _, err := repo.FindDriver(ctx, 2); !errors.Is(err, domain.ErrProfileNotFound) {
			t.Errorf("driver row must not survive the failed transaction, got %v", err)
		}

		// No partial state left behind, so a retry goes through.
		if err := repo.CreateDriver(ctx, &domain.RoleProfile{AccountID: 2}); err != nil {
			t.Errorf("retrying the driver insert must succeed: %v", err)
		}
	})
}

func TestProfileRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t, &DBDriverProfile{}, &DBOwnerProfile{})
	repo := NewProfileRepository(db)
	ctx := context.Background()

	if err := repo.CreateDriver(ctx, &domain.RoleProfile{AccountID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("second driver profile for the same account conflicts", func(t *testing.T) {
		err := repo.CreateDriver(ctx, &domain.RoleProfile{AccountID: 1})
		if !errors.Is(err, domain.ErrProfileExists) {
			t.Fatalf("expected ErrProfileExists, got %v", err)
		}
	})

	t.Run("driver and owner profiles coexist for one account", func(t *testing.T) {
		if err := repo.CreateOwner(ctx, &domain.RoleProfile{AccountID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindDriver(ctx, 1); err != nil {
			t.Errorf("driver profile should exist: %v", err)
		}
		if _, err := repo.FindOwner(ctx, 1); err != nil {
			t.Errorf("owner profile should exist: %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		if _, err := repo.FindDriver(ctx, 999); !errors.Is(err, domain.ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}

func TestProfileRepositoryImpl_SetDocument(t *testing.T) {
	db := setupTestDB(t, &DBDriverProfile{}, &DBOwnerProfile{})
	repo := NewProfileRepository(db)
	ctx := context.Background()

	if err := repo.CreateDriver(ctx, &domain.RoleProfile{AccountID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.CreateOwner(ctx, &domain.RoleProfile{AccountID: 2}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Run("captain documents land on the driver profile", func(t *testing.T) {
		err := repo.SetDocument(ctx, 1, domain.RegisterTypeCaptain, domain.DocumentPassport, "passport/abc.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile, err := repo.FindDriver(ctx, 1)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if profile.PassportRef != "passport/abc.jpg" || !profile.ValidPassport {
			t.Errorf("passport not recorded: %+v", profile)
		}
		if profile.ValidIDCard {
			t.Error("id card flag must stay unset")
		}
	})

	t.Run("owner documents land on the owner profile", func(t *testing.T) {
		err := repo.SetDocument(ctx, 2, domain.RegisterTypeBusOwner, domain.DocumentIDCard, "idcard/xyz.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile, err := repo.FindOwner(ctx, 2)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if profile.IDCardRef != "idcard/xyz.png" || !profile.ValidIDCard {
			t.Errorf("id card not recorded: %+v", profile)
		}
	})

	t.Run("document for an account without a profile", func(t *testing.T) {
		err := repo.SetDocument(ctx, 999, domain.RegisterTypeCaptain, domain.DocumentPassport, "passport/zzz.jpg")
		if !errors.Is(err, domain.ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("unset register type is rejected", func(t *testing.T) {
		err := repo.SetDocument(ctx, 1, domain.RegisterTypeUnset, domain.DocumentPassport, "passport/zzz.jpg")
		if !errors.Is(err, domain.ErrInvalidRegisterType) {
			t.Fatalf("expected ErrInvalidRegisterType, got %v", err)
		}
	})
}

package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/mocks"
)

func TestDocumentServiceImpl_Attach(t *testing.T) {
	t.Run("routes the reference by register type", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository()
		accounts.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
			return &domain.Account{ID: id, RegisterType: domain.RegisterTypeCaptain}, nil
		}

		var gotType domain.RegisterType
		profiles := mocks.NewMockProfileRepository()
		profiles.SetDocumentFunc = func(ctx context.Context, accountID uint, rt domain.RegisterType, kind domain.DocumentKind, ref string) error {
			gotType = rt
			return nil
		}

		svc := NewDocumentService(accounts, profiles, zap.NewNop())
		if err := svc.Attach(context.Background(), 1, domain.DocumentPassport, "passports/abc.png"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotType != domain.RegisterTypeCaptain {
			t.Errorf("expected the account's register type, got %s", gotType)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockAccountRepository(), mocks.NewMockProfileRepository(), zap.NewNop())
		err := svc.Attach(context.Background(), 404, domain.DocumentIDCard, "idcards/x.png")
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestDocumentServiceImpl_Profiles(t *testing.T) {
	driverProfile := &domain.RoleProfile{AccountID: 1, ValidPassport: true}
	ownerProfile := &domain.RoleProfile{AccountID: 1, ValidIDCard: true}

	withProfiles := func() *mocks.MockProfileRepository {
		profiles := mocks.NewMockProfileRepository()
		profiles.FindDriverFunc = func(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
			return driverProfile, nil
		}
		profiles.FindOwnerFunc = func(ctx context.Context, accountID uint) (*domain.RoleProfile, error) {
			return ownerProfile, nil
		}
		return profiles
	}

	tests := []struct {
		name         string
		registerType domain.RegisterType
		profiles     *mocks.MockProfileRepository
		wantDriver   bool
		wantOwner    bool
	}{
		{name: "captain sees the driver profile", registerType: domain.RegisterTypeCaptain, profiles: withProfiles(), wantDriver: true},
		{name: "bus owner sees the owner profile", registerType: domain.RegisterTypeBusOwner, profiles: withProfiles(), wantOwner: true},
		{name: "both sees both", registerType: domain.RegisterTypeBoth, profiles: withProfiles(), wantDriver: true, wantOwner: true},
		{name: "unset register type has no profiles", registerType: domain.RegisterTypeUnset, profiles: withProfiles()},
		{name: "missing rows come back nil", registerType: domain.RegisterTypeBoth, profiles: mocks.NewMockProfileRepository()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDocumentService(mocks.NewMockAccountRepository(), tt.profiles, zap.NewNop())
			account := &domain.Account{ID: 1, RegisterType: tt.registerType}

			driver, owner, err := svc.Profiles(context.Background(), account)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (driver != nil) != tt.wantDriver {
				t.Errorf("driver present = %v, want %v", driver != nil, tt.wantDriver)
			}
			if (owner != nil) != tt.wantOwner {
				t.Errorf("owner present = %v, want %v", owner != nil, tt.wantOwner)
			}
		})
	}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/mocks"
)

func accountFixture() *domain.Account {
	return &domain.Account{
		ID:         1,
		Username:   "ahmed",
		Email:      "ahmed@example.com",
		Phone:      "+96891234567",
		SystemRole: domain.SystemRoleUser,
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		phone         string
		setupMocks    func(*mocks.MockAccountRepository, *mocks.MockOTPService)
		expectedError error
		wantChannel   domain.Channel
	}{
		{
			name:  "login by email issues otp on email",
			email: "ahmed@example.com",
			setupMocks: func(accounts *mocks.MockAccountRepository, otp *mocks.MockOTPService) {
				accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
					return accountFixture(), nil
				}
			},
			wantChannel: domain.ChannelEmail,
		},
		{
			name:  "login by phone issues otp on phone",
			phone: "+96891234567",
			setupMocks: func(accounts *mocks.MockAccountRepository, otp *mocks.MockOTPService) {
				accounts.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.Account, error) {
					return accountFixture(), nil
				}
			},
			wantChannel: domain.ChannelPhone,
		},
		{
			name:          "neither contact given",
			setupMocks:    func(accounts *mocks.MockAccountRepository, otp *mocks.MockOTPService) {},
			expectedError: domain.ErrContactRequired,
		},
		{
			name:  "both contacts given",
			email: "ahmed@example.com",
			phone: "+96891234567",
			setupMocks: func(accounts *mocks.MockAccountRepository, otp *mocks.MockOTPService) {
			},
			expectedError: domain.ErrContactRequired,
		},
		{
			name:          "unknown contact",
			email:         "nobody@example.com",
			setupMocks:    func(accounts *mocks.MockAccountRepository, otp *mocks.MockOTPService) {},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := mocks.NewMockAccountRepository()
			otp := mocks.NewMockOTPService()
			var gotChannel domain.Channel
			otp.IssueFunc = func(ctx context.Context, account *domain.Account, channel domain.Channel) (*domain.OTPEntry, error) {
				gotChannel = channel
				return &domain.OTPEntry{AccountID: account.ID, Code: "123456", ExpiresAt: time.Now().Add(5 * time.Minute)}, nil
			}
			tt.setupMocks(accounts, otp)

			svc := NewAuthService(accounts, otp, mocks.NewMockTokenService(), zap.NewNop())
			id, err := svc.Login(context.Background(), tt.email, tt.phone)

			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil {
				if id != 1 {
					t.Errorf("expected account id 1, got %d", id)
				}
				if gotChannel != tt.wantChannel {
					t.Errorf("expected channel %s, got %s", tt.wantChannel, gotChannel)
				}
			}
		})
	}
}

func TestAuthServiceImpl_ValidateOTP(t *testing.T) {
	t.Run("success stores the minted token", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository()
		accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			return accountFixture(), nil
		}
		var storedToken string
		accounts.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
			storedToken = token
			return nil
		}

		svc := NewAuthService(accounts, mocks.NewMockOTPService(), mocks.NewMockTokenService(), zap.NewNop())
		result, err := svc.ValidateOTP(context.Background(), "ahmed@example.com", "", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SessionToken == "" || result.SessionToken != storedToken {
			t.Errorf("minted token %q must equal stored token %q", result.SessionToken, storedToken)
		}
		if result.Account.SessionToken != storedToken {
			t.Error("returned account must carry the new token")
		}
	})

	t.Run("invalid code never mints a token", func(t *testing.T) {
		accounts := mocks.NewMockAccountRepository()
		accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
			return accountFixture(), nil
		}
		var tokenStored bool
		accounts.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
			tokenStored = true
			return nil
		}
		otp := mocks.NewMockOTPService()
		otp.ValidateFunc = func(ctx context.Context, accountID uint, code string) error {
			return domain.ErrOTPInvalid
		}

		svc := NewAuthService(accounts, otp, mocks.NewMockTokenService(), zap.NewNop())
		_, err := svc.ValidateOTP(context.Background(), "ahmed@example.com", "", "000000")
		if !errors.Is(err, domain.ErrOTPInvalid) {
			t.Fatalf("expected ErrOTPInvalid, got %v", err)
		}
		if tokenStored {
			t.Error("no token may be stored on a failed validation")
		}
	})
}

func TestAuthServiceImpl_Authenticate(t *testing.T) {
	withStored := func(token string) *mocks.MockAccountRepository {
		accounts := mocks.NewMockAccountRepository()
		accounts.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
			a := accountFixture()
			a.SessionToken = token
			return a, nil
		}
		return accounts
	}

	tests := []struct {
		name          string
		token         string
		accounts      *mocks.MockAccountRepository
		setupToken    func(*mocks.MockTokenService)
		expectedError error
	}{
		{
			name:     "valid token matching the stored one",
			token:    "live-token",
			accounts: withStored("live-token"),
		},
		{
			name:     "verified token superseded by a newer login",
			token:    "old-token",
			accounts: withStored("new-token"),
			// Parse succeeds, the equality check is what rejects it.
			expectedError: domain.ErrTokenRevoked,
		},
		{
			name:          "verified token after logout",
			token:         "old-token",
			accounts:      withStored(""),
			expectedError: domain.ErrTokenRevoked,
		},
		{
			name:     "expired token",
			token:    "expired-token",
			accounts: withStored("expired-token"),
			setupToken: func(ts *mocks.MockTokenService) {
				ts.ParseFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedError: domain.ErrTokenExpired,
		},
		{
			name:     "token for a deleted account",
			token:    "orphan-token",
			accounts: mocks.NewMockAccountRepository(),
			expectedError: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			if tt.setupToken != nil {
				tt.setupToken(tokenSvc)
			}

			svc := NewAuthService(tt.accounts, mocks.NewMockOTPService(), tokenSvc, zap.NewNop())
			account, err := svc.Authenticate(context.Background(), tt.token)

			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil && account == nil {
				t.Fatal("expected an account on success")
			}
		})
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	accounts := mocks.NewMockAccountRepository()
	var cleared []string
	accounts.UpdateSessionTokenFunc = func(ctx context.Context, id uint, token string) error {
		cleared = append(cleared, token)
		return nil
	}

	svc := NewAuthService(accounts, mocks.NewMockOTPService(), mocks.NewMockTokenService(), zap.NewNop())

	// Logout twice: the second call is a no-op, not an error.
	if err := svc.Logout(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(context.Background(), 1); err != nil {
		t.Fatalf("logout must be idempotent, got %v", err)
	}
	for _, tok := range cleared {
		if tok != "" {
			t.Errorf("logout must clear the token, stored %q", tok)
		}
	}
}

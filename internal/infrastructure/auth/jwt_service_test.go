package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/omxqn/api-application/domain"
)

func TestJWTServiceImpl_MintAndParse(t *testing.T) {
	svc := NewJWTService("test-secret-key", "api-application", 672*time.Hour)

	token, expiresAt, err := svc.Mint(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if time.Until(expiresAt) < 671*time.Hour {
		t.Errorf("expected roughly four weeks of validity, got until %v", expiresAt)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("expected account 42, got %d", claims.AccountID)
	}
	if claims.ExpiresAt != expiresAt.Unix() {
		t.Errorf("claims expiry %d does not match minted expiry %d", claims.ExpiresAt, expiresAt.Unix())
	}
}

func TestJWTServiceImpl_MintIsUnique(t *testing.T) {
	svc := NewJWTService("test-secret-key", "api-application", time.Hour)

	first, _, err := svc.Mint(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.Mint(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two tokens for the same account must differ")
	}
}

func TestJWTServiceImpl_Parse(t *testing.T) {
	svc := NewJWTService("test-secret-key", "api-application", time.Hour)

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		expectedError error
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "token signed with a different key",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret", "api-application", time.Hour)
				tok, _, err := other.Mint(1)
				if err != nil {
					t.Fatalf("mint: %v", err)
				}
				return tok
			},
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTService("test-secret-key", "api-application", -time.Minute)
				tok, _, err := expired.Mint(1)
				if err != nil {
					t.Fatalf("mint: %v", err)
				}
				return tok
			},
			expectedError: domain.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token(t))
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

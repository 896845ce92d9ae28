package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/omxqn/api-application/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestOTPRepositoryImpl_Replace(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewOTPRepository(client)
	ctx := context.Background()

	entry := &domain.OTPEntry{AccountID: 1, Code: "482910", ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := store.Replace(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The key outlives the code's validity window so an expired code can
	// still be found and reported as expired.
	ttl := mr.TTL("otp:1")
	if ttl <= 5*time.Minute {
		t.Errorf("expected TTL beyond the validity window, got %v", ttl)
	}

	t.Run("a second code replaces the first", func(t *testing.T) {
		next := &domain.OTPEntry{AccountID: 1, Code: "775301", ExpiresAt: time.Now().Add(5 * time.Minute)}
		if err := store.Replace(ctx, next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Find(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Code != "775301" {
			t.Errorf("expected the newer code, got %q", got.Code)
		}
	})
}

func TestOTPRepositoryImpl_Find(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPRepository(client)
	ctx := context.Background()

	t.Run("missing entry", func(t *testing.T) {
		if _, err := store.Find(ctx, 42); !errors.Is(err, domain.ErrOTPNotFound) {
			t.Fatalf("expected ErrOTPNotFound, got %v", err)
		}
	})

	t.Run("round trip preserves the expiry", func(t *testing.T) {
		expires := time.Now().Add(5 * time.Minute).Truncate(time.Second)
		entry := &domain.OTPEntry{AccountID: 1, Code: "482910", ExpiresAt: expires}
		if err := store.Replace(ctx, entry); err != nil {
			t.Fatalf("seed: %v", err)
		}

		got, err := store.Find(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Code != "482910" || !got.ExpiresAt.Equal(expires) {
			t.Errorf("round trip mangled the entry: %+v", got)
		}
	})

	t.Run("a stale entry is still found, not gone", func(t *testing.T) {
		entry := &domain.OTPEntry{AccountID: 2, Code: "111111", ExpiresAt: time.Now().Add(-time.Minute)}
		if err := store.Replace(ctx, entry); err != nil {
			t.Fatalf("seed: %v", err)
		}

		got, err := store.Find(ctx, 2)
		if err != nil {
			t.Fatalf("expected the stale entry to be present, got %v", err)
		}
		if !got.Expired(time.Now()) {
			t.Error("entry should report itself expired")
		}
	})
}

func TestOTPRepositoryImpl_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewOTPRepository(client)
	ctx := context.Background()

	entry := &domain.OTPEntry{AccountID: 1, Code: "482910", ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := store.Replace(ctx, entry); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Find(ctx, 1); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound after delete, got %v", err)
	}

	// Deleting again is harmless.
	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

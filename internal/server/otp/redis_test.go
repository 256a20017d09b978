package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/djitsotsu/authsvc/internal/shared"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb), mr
}

func TestRedisStore_SetGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, LoginCodeKey("a@x.com"), "123456", LoginCodeTTL); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	value, err := store.Get(ctx, LoginCodeKey("a@x.com"))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if value != "123456" {
		t.Fatalf("expected 123456, got %q", value)
	}
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), LoginCodeKey("missing"))
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, LoginCodeKey("a@x.com"), "123456", LoginCodeTTL); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	mr.FastForward(LoginCodeTTL + time.Second)

	if _, err := store.Get(ctx, LoginCodeKey("a@x.com")); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound after TTL, got %v", err)
	}
}

func TestRedisStore_GetAndDelete_ConsumesOnce(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	key := LoginCodeKey("a@x.com")
	if err := store.Set(ctx, key, "123456", LoginCodeTTL); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	value, err := store.GetAndDelete(ctx, key)
	if err != nil {
		t.Fatalf("GetAndDelete error: %v", err)
	}
	if value != "123456" {
		t.Fatalf("expected 123456, got %q", value)
	}

	if _, err := store.GetAndDelete(ctx, key); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("second GetAndDelete should report ErrorNotFound, got %v", err)
	}
}

func TestRedisStore_DeleteIfValue(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	key := RegistrationKey("a@x.com")
	if err := store.Set(ctx, key, "payload-1", RegistrationTTL); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	deleted, err := store.DeleteIfValue(ctx, key, "payload-2")
	if err != nil {
		t.Fatalf("DeleteIfValue error: %v", err)
	}
	if deleted {
		t.Fatal("mismatched value must not delete the key")
	}
	if _, err := store.Get(ctx, key); err != nil {
		t.Fatalf("key should survive a mismatched delete: %v", err)
	}

	deleted, err = store.DeleteIfValue(ctx, key, "payload-1")
	if err != nil {
		t.Fatalf("DeleteIfValue error: %v", err)
	}
	if !deleted {
		t.Fatal("matching value must delete the key")
	}

	// second consume loses
	deleted, err = store.DeleteIfValue(ctx, key, "payload-1")
	if err != nil {
		t.Fatalf("DeleteIfValue error: %v", err)
	}
	if deleted {
		t.Fatal("key already consumed, second delete must report false")
	}
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	key := LoginCodeKey("a@x.com")
	if err := store.Set(ctx, key, "123456", LoginCodeTTL); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound after delete, got %v", err)
	}
}

func TestPendingRegistration_EncodeDecode(t *testing.T) {
	p := &PendingRegistration{
		Nickname:     "alice",
		PasswordHash: "$2a$10$hash",
		AvatarURL:    "https://cdn.example/a.png",
		Code:         "654321",
	}

	encoded, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	decoded, err := DecodePendingRegistration(encoded)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if *decoded != *p {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, p)
	}
}

func TestDecodePendingRegistration_Invalid(t *testing.T) {
	if _, err := DecodePendingRegistration("not-json"); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}

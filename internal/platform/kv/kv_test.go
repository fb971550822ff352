package kv_test

import (
	"context"
	"errors"
	"testing"

	"sleepmaster/internal/platform/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Get(ctx, "current_session"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("missing key must return ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, "current_session", []byte(`{"id":"x"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	payload, err := store.Get(ctx, "current_session")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(payload) != `{"id":"x"}` {
		t.Fatalf("unexpected payload %q", payload)
	}

	if err := store.Delete(ctx, "current_session"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "current_session"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("deleted key must return ErrKeyNotFound, got %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, "current_session"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir() + "/nested/data"
	store := kv.NewFileStore(dir)
	if err := store.Set(context.Background(), "settings", []byte("{}")); err != nil {
		t.Fatalf("set must create the data dir: %v", err)
	}
}

package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/custodia-labs/textscan/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

// setupTestDocumentStore creates a test Redis client and DocumentStore
func setupTestDocumentStore(t *testing.T) (*DocumentStore, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewDocumentStore(client), mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestNewDocumentStore(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewDocumentStore(client)

	if store == nil {
		t.Fatal("expected non-nil DocumentStore")
	}
	if store.client == nil {
		t.Error("expected non-nil Redis client")
	}
	if store.prefix != defaultKeyPrefix {
		t.Errorf("expected prefix %q, got %q", defaultKeyPrefix, store.prefix)
	}
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	ctx := context.Background()
	payload := []byte("binary\x00safe\xff content")

	if err := store.Save(ctx, "a.txt", payload); err != nil {
		t.Fatalf("unexpected error saving document: %v", err)
	}

	data, err := store.Get(ctx, "a.txt")
	if err != nil {
		t.Fatalf("failed to retrieve saved document: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("expected %q, got %q", payload, data)
	}
}

func TestDocumentStore_Save_KeyLayout(t *testing.T) {
	store, mr, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	if err := store.Save(context.Background(), "a.txt", []byte("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := mr.Get("textscan:doc:a.txt")
	if err != nil {
		t.Fatalf("expected content key: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if !mr.Exists("textscan:docs") {
		t.Error("expected index key to exist")
	}
}

func TestDocumentStore_Save_InvalidName(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	err := store.Save(context.Background(), "evil/../a.txt", []byte("x"))
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	_, err := store.Get(context.Background(), "missing.txt")
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentStore_List_InsertionOrder(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	ctx := context.Background()
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		if err := store.Save(ctx, name, []byte(name)); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}
	// overwrite keeps position
	if err := store.Save(ctx, "c.txt", []byte("new")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"c.txt", "a.txt", "b.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	data, _ := store.Get(ctx, "c.txt")
	if string(data) != "new" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

func TestDocumentStore_List_Empty(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	names, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no documents, got %v", names)
	}
}

func TestDocumentStore_List_IgnoresForeignMembers(t *testing.T) {
	store, mr, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	if _, err := mr.ZAdd("textscan:docs", 0, "stray.bin"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Save(context.Background(), "a.txt", []byte("a")); err != nil {
		t.Fatalf("save: %v", err)
	}

	names, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "a.txt" {
		t.Errorf("expected [a.txt], got %v", names)
	}
}

func TestDocumentStore_Delete(t *testing.T) {
	store, _, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Save(ctx, "a.txt", []byte("a")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Delete(ctx, "a.txt"); err != nil {
		t.Fatalf("unexpected error deleting: %v", err)
	}

	if _, err := store.Get(ctx, "a.txt"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	names, _ := store.List(ctx)
	if len(names) != 0 {
		t.Errorf("expected index entry removed, got %v", names)
	}

	if err := store.Delete(ctx, "a.txt"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDocumentStore_WithPrefix(t *testing.T) {
	store, mr, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	tenant := store.WithPrefix("tenant1:")
	if err := tenant.Save(context.Background(), "a.txt", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !mr.Exists("tenant1:doc:a.txt") {
		t.Error("expected prefixed key")
	}
	names, _ := store.List(context.Background())
	if len(names) != 0 {
		t.Errorf("default prefix should not see tenant documents, got %v", names)
	}
}

func TestDocumentStore_Ping(t *testing.T) {
	store, mr, cleanup := setupTestDocumentStore(t)
	defer cleanup()

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}

	mr.Close()
	if err := store.Ping(context.Background()); err == nil {
		t.Error("expected ping error after server shutdown")
	}
}

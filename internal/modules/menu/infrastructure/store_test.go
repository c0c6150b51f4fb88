package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

func exerciseStore(t *testing.T, store port.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Load(ctx, port.KeyConfig); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent key, got %v", err)
	}
	if err := store.Save(ctx, port.KeyConfig, []byte(`{"name_en":"A"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, port.KeyConfig, []byte(`{"name_en":"B"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Load(ctx, port.KeyConfig)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"name_en":"B"}` {
		t.Fatalf("expected last write to win, got %s", got)
	}
	if err := store.Remove(ctx, port.KeyConfig); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(ctx, port.KeyConfig); err != nil {
		t.Fatalf("removing an absent key must not fail: %v", err)
	}
	if _, err := store.Load(ctx, port.KeyConfig); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	exerciseStore(t, store)

	if err := store.Save(context.Background(), port.KeyCurrentUser, []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "current-user.json" {
		t.Fatalf("expected a single document file, got %v", entries)
	}
	if _, err := os.Stat(filepath.Join(dir, "current-user.json")); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	value := []byte("abc")
	_ = store.Save(context.Background(), "k", value)
	value[0] = 'z'
	got, _ := store.Load(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("store aliased caller buffer: %s", got)
	}
}

func TestInstrumentedStore(t *testing.T) {
	t.Parallel()
	metrics := NewMetrics(prometheus.NewRegistry())
	store := NewInstrumentedStore(NewMemoryStore(), metrics)
	exerciseStore(t, store)

	if got := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("load", port.KeyConfig, "not_found")); got != 2 {
		t.Fatalf("expected 2 not_found loads, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("save", port.KeyConfig, "ok")); got != 2 {
		t.Fatalf("expected 2 saves, got %v", got)
	}
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	if _, _, err := OpenStore(context.Background(), StoreConfig{Backend: "floppy"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	store, closer, err := OpenStore(context.Background(), StoreConfig{Backend: "memory"})
	if err != nil || store == nil || closer == nil {
		t.Fatalf("memory backend: %v", err)
	}
}

package infrastructure

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

func TestRedisStore(t *testing.T) {
	t.Parallel()
	server := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), RedisConfig{Addr: server.Addr(), Prefix: "falafel:"})
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)

	if err := store.Save(context.Background(), port.KeyLanguage, []byte(`"en"`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := server.Get("falafel:" + port.KeyLanguage)
	if err != nil || got != `"en"` {
		t.Fatalf("expected prefixed key, got %q %v", got, err)
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	t.Parallel()
	if _, err := NewRedisStore(context.Background(), RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatalf("expected connect error")
	}
}

// Mongo and Postgres need a live server; set TEST_MONGO_URI or TEST_POSTGRES_DSN to run them.

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	store, err := NewMongoStore(ctx, MongoConfig{
		URI:        uri,
		Database:   "falafel_test",
		Collection: "documents_" + uuid.NewString()[:8],
	})
	if err != nil {
		t.Fatalf("new mongo store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.collection.Drop(context.Background())
		_ = store.Close()
	})
	exerciseStore(t, store)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	prefix := "test-" + uuid.NewString()[:8] + ":"
	store, err := NewPostgresStore(dsn, prefix)
	if err != nil {
		t.Fatalf("new postgres store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.db.Where("key LIKE ?", prefix+"%").Delete(&documentRecord{}).Error
		_ = store.Close()
	})
	exerciseStore(t, store)
}

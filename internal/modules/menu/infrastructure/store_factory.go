package infrastructure

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

type StoreConfig struct {
	Backend  string
	Dir      string
	Prefix   string
	Redis    RedisConfig
	Mongo    MongoConfig
	Postgres string
}

// OpenStore builds the configured backend. The closer releases connections and may be a no-op.
func OpenStore(ctx context.Context, cfg StoreConfig) (port.DocumentStore, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "file":
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case "memory":
		return NewMemoryStore(), nopCloser{}, nil
	case "redis":
		redisCfg := cfg.Redis
		redisCfg.Prefix = cfg.Prefix
		store, err := NewRedisStore(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case "mongo", "mongodb":
		mongoCfg := cfg.Mongo
		mongoCfg.Prefix = cfg.Prefix
		store, err := NewMongoStore(ctx, mongoCfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case "postgres", "postgresql":
		store, err := NewPostgresStore(cfg.Postgres, cfg.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

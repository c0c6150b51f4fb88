package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Store     StoreConfig
	Kafka     KafkaConfig
	Menu      MenuConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

type ServerConfig struct {
	Port       string
	InstanceID string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type StoreConfig struct {
	Backend         string
	Dir             string
	Prefix          string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	PostgresDSN     string
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topic   string
}

// Enabled reports whether a change feed broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && strings.TrimSpace(k.Topic) != ""
}

type MenuConfig struct {
	HandoffBaseURL  string
	PublicURL       string
	NotificationTTL time.Duration
	SliderInterval  time.Duration
	PhraseInterval  time.Duration
}

type UploadConfig struct {
	MaxBytes  int64
	MaxWidth  int
	MaxHeight int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type AuthConfig struct {
	RequirePassword bool
	HashPasswords   bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("INSTANCE_ID", "menu-1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_DIR", "./logs")
	v.SetDefault("STORE_BACKEND", "file")
	v.SetDefault("STORE_DIR", "./data")
	v.SetDefault("STORE_PREFIX", "menu:")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "menu")
	v.SetDefault("MONGO_COLLECTION", "documents")
	v.SetDefault("KAFKA_GROUP_ID", "menu-live")
	v.SetDefault("KAFKA_TOPIC", "menu.changes")
	v.SetDefault("ORDER_HANDOFF_BASE_URL", "https://wa.me")
	v.SetDefault("PUBLIC_URL", "http://localhost:8080/")
	v.SetDefault("NOTIFICATION_TTL", "1500ms")
	v.SetDefault("SLIDER_INTERVAL", "5s")
	v.SetDefault("PHRASE_INTERVAL", "3s")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("UPLOAD_MAX_WIDTH", 1600)
	v.SetDefault("UPLOAD_MAX_HEIGHT", 1600)
	v.SetDefault("RATE_LIMIT_RPS", 2)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("AUTH_REQUIRE_PASSWORD", false)
	v.SetDefault("AUTH_HASH_PASSWORDS", false)
}

// Load reads the environment, then CONFIG_FILE when set. Environment values win.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()
	_ = v.BindEnv("KAFKA_BROKERS", "KAFKA_BROKERS", "KAFKA_BROKER")

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       v.GetString("PORT"),
			InstanceID: v.GetString("INSTANCE_ID"),
		},
		Logging: LoggingConfig{
			Level:     v.GetString("LOG_LEVEL"),
			Format:    v.GetString("LOG_FORMAT"),
			Directory: v.GetString("LOG_DIR"),
		},
		Store: StoreConfig{
			Backend:         strings.ToLower(v.GetString("STORE_BACKEND")),
			Dir:             v.GetString("STORE_DIR"),
			Prefix:          v.GetString("STORE_PREFIX"),
			RedisAddr:       v.GetString("REDIS_ADDR"),
			RedisPassword:   v.GetString("REDIS_PASSWORD"),
			RedisDB:         v.GetInt("REDIS_DB"),
			MongoURI:        v.GetString("MONGO_URI"),
			MongoDatabase:   v.GetString("MONGO_DATABASE"),
			MongoCollection: v.GetString("MONGO_COLLECTION"),
			PostgresDSN:     v.GetString("POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Menu: MenuConfig{
			HandoffBaseURL:  v.GetString("ORDER_HANDOFF_BASE_URL"),
			PublicURL:       v.GetString("PUBLIC_URL"),
			NotificationTTL: v.GetDuration("NOTIFICATION_TTL"),
			SliderInterval:  v.GetDuration("SLIDER_INTERVAL"),
			PhraseInterval:  v.GetDuration("PHRASE_INTERVAL"),
		},
		Upload: UploadConfig{
			MaxBytes:  v.GetInt64("UPLOAD_MAX_BYTES"),
			MaxWidth:  v.GetInt("UPLOAD_MAX_WIDTH"),
			MaxHeight: v.GetInt("UPLOAD_MAX_HEIGHT"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Auth: AuthConfig{
			RequirePassword: v.GetBool("AUTH_REQUIRE_PASSWORD"),
			HashPasswords:   v.GetBool("AUTH_HASH_PASSWORDS"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	switch c.Store.Backend {
	case "file", "memory", "redis", "mongo", "mongodb":
	case "postgres", "postgresql":
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			return errors.New("POSTGRES_DSN is required for the postgres store")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Menu.NotificationTTL <= 0 || c.Menu.SliderInterval <= 0 || c.Menu.PhraseInterval <= 0 {
		return errors.New("NOTIFICATION_TTL, SLIDER_INTERVAL and PHRASE_INTERVAL must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

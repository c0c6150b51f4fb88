package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Store.Backend != "file" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Menu.NotificationTTL != 1500*time.Millisecond || cfg.Menu.SliderInterval != 5*time.Second || cfg.Menu.PhraseInterval != 3*time.Second {
		t.Fatalf("unexpected timings %+v", cfg.Menu)
	}
	if cfg.Auth.RequirePassword || cfg.Auth.HashPasswords {
		t.Fatalf("password hardening must be opt-in")
	}
	if cfg.Kafka.Enabled() {
		t.Fatalf("kafka must stay off without brokers")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("KAFKA_BROKER", "k1:9092, k2:9092")
	t.Setenv("SLIDER_INTERVAL", "7s")
	t.Setenv("AUTH_REQUIRE_PASSWORD", "true")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Store.Backend != "redis" {
		t.Fatalf("env not applied: %+v", cfg.Server)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" || !cfg.Kafka.Enabled() {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Menu.SliderInterval != 7*time.Second || !cfg.Auth.RequirePassword {
		t.Fatalf("unexpected values %+v %+v", cfg.Menu, cfg.Auth)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":      {"STORE_BACKEND": "floppy"},
		"postgres without dsn": {"STORE_BACKEND": "postgres"},
		"zero interval":        {"PHRASE_INTERVAL": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := load(viper.New()); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE",
		"LEDGER_HTTP_PORT",
		"LEDGER_POSTGRES_DSN",
		"LEDGER_SESSION_COOKIE_NAME",
		"LEDGER_SESSION_TTL_HOURS",
		"LEDGER_REDIS_ADDR",
		"LEDGER_REDIS_PASSWORD",
		"LEDGER_KAFKA_BROKERS",
		"LEDGER_KAFKA_TOPIC",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when dsn is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_POSTGRES_DSN", "postgres://localhost/ledger")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddress() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTPAddress())
	}
	if cfg.Session.CookieName != "sessionId" {
		t.Fatalf("expected sessionId cookie, got %s", cfg.Session.CookieName)
	}
	if cfg.SessionTTL() != 7*24*time.Hour {
		t.Fatalf("expected 7 day ttl, got %s", cfg.SessionTTL())
	}
	if brokers := cfg.KafkaBrokers(); brokers != nil {
		t.Fatalf("expected no kafka brokers by default, got %v", brokers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_POSTGRES_DSN", "postgres://localhost/ledger")
	t.Setenv("LEDGER_HTTP_PORT", "9090")
	t.Setenv("LEDGER_SESSION_TTL_HOURS", "24")
	t.Setenv("LEDGER_KAFKA_BROKERS", "broker-1:9092, broker-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddress() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.HTTPAddress())
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %s", cfg.SessionTTL())
	}
	brokers := cfg.KafkaBrokers()
	if len(brokers) != 2 || brokers[0] != "broker-1:9092" || brokers[1] != "broker-2:9092" {
		t.Fatalf("unexpected brokers: %v", brokers)
	}
}

func TestLoadYAMLFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("http:\n  port: \"7070\"\ndatabase:\n  dsn: postgres://file/ledger\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LEDGER_HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN != "postgres://file/ledger" {
		t.Fatalf("expected dsn from file, got %s", cfg.Database.DSN)
	}
	if cfg.HTTPAddress() != ":9090" {
		t.Fatalf("expected env to override file, got %s", cfg.HTTPAddress())
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_POSTGRES_DSN", "postgres://localhost/ledger")
	t.Setenv("LEDGER_SESSION_TTL_HOURS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

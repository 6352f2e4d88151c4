package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "CONFIG_FILE"

// Config defines ledger service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Session struct {
		CookieName string `yaml:"cookie_name"`
		TTLHours   int    `yaml:"ttl_hours"`
	} `yaml:"session"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Kafka struct {
		Brokers string `yaml:"brokers"`
		Topic   string `yaml:"topic"`
	} `yaml:"kafka"`
}

// Load hydrates configuration from an optional YAML file (CONFIG_FILE env)
// and overrides individual values with LEDGER_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Session.CookieName = "sessionId"
	cfg.Session.TTLHours = 24 * 7
	cfg.Kafka.Topic = "ledger.transaction.recorded"

	if path := os.Getenv(configPathEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	}

	overrideString(&cfg.HTTP.Port, "LEDGER_HTTP_PORT")
	overrideString(&cfg.Database.DSN, "LEDGER_POSTGRES_DSN")
	overrideString(&cfg.Session.CookieName, "LEDGER_SESSION_COOKIE_NAME")
	overrideString(&cfg.Redis.Addr, "LEDGER_REDIS_ADDR")
	overrideString(&cfg.Redis.Password, "LEDGER_REDIS_PASSWORD")
	overrideString(&cfg.Kafka.Brokers, "LEDGER_KAFKA_BROKERS")
	overrideString(&cfg.Kafka.Topic, "LEDGER_KAFKA_TOPIC")
	if err := overrideInt(&cfg.Session.TTLHours, "LEDGER_SESSION_TTL_HOURS"); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if cfg.Session.TTLHours <= 0 {
		return nil, errors.New("config: session ttl must be positive")
	}
	return cfg, nil
}

// HTTPAddress returns :port style string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// SessionTTL returns the credential validity window.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// KafkaBrokers splits the comma-separated broker list, empty when unset.
func (c *Config) KafkaBrokers() []string {
	raw := strings.TrimSpace(c.Kafka.Brokers)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func overrideString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func overrideInt(target *int, key string) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}
	*target = parsed
	return nil
}

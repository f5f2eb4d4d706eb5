package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"barangay-portal/internal/shared/connection"

	"github.com/joho/godotenv"
)

// Config is everything the api, worker and consumer read from the environment.
type Config struct {
	Env  string
	Port string

	Postgres     connection.PostgresConfig
	DBMaxRetries int

	// Location is the zone of DB_TIMEZONE, shared by the database session and the dashboards.
	Location *time.Location

	RedisAddr   string
	KafkaBroker string

	JWTSecret string

	AnalyticsCacheTTL  time.Duration
	OutboxPollInterval time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (when present) and the process environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", "")),
		Postgres: connection.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "barangay"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	loc, err := time.LoadLocation(cfg.Postgres.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_TIMEZONE %q: %w", cfg.Postgres.TimeZone, err)
	}
	cfg.Location = loc

	retries, err := parseIntEnv("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxRetries = retries

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"ANALYTICS_CACHE_TTL", time.Minute, &cfg.AnalyticsCacheTTL},
		{"OUTBOX_POLL_INTERVAL", 3 * time.Second, &cfg.OutboxPollInterval},
		{"HTTP_READ_TIMEOUT", 5 * time.Second, &cfg.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", 10 * time.Second, &cfg.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", 60 * time.Second, &cfg.IdleTimeout},
		{"HTTP_SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, err := parseDurationEnv(d.key, d.def)
		if err != nil {
			return nil, err
		}
		*d.dst = v
	}

	return cfg, nil
}

// RequireKafka is checked by the worker and consumer binaries; the api runs without a broker.
func (c *Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

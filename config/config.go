package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hirecentive/dashboard/database"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Port              string
	UseHTTPS          bool
	AuditDSN          string
	Seed              uint64
	MockInfluencers   int
	MockLogs          int
	OperatorName      string
	MutationRateLimit int
	LogLevel          string
	SessionLifetime   time.Duration
}

// Load reads .env when present and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults for unset keys
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:         valueOr(getenv("PORT"), "8080"),
		UseHTTPS:     getenv("USE_HTTPS") == "true",
		AuditDSN:     valueOr(getenv("AUDIT_DSN"), database.DefaultDSN),
		OperatorName: valueOr(getenv("OPERATOR_NAME"), "Admin"),
		LogLevel:     valueOr(getenv("LOG_LEVEL"), "info"),
	}

	var err error
	if cfg.MockInfluencers, err = intOr(getenv, "MOCK_INFLUENCERS", 50); err != nil {
		return nil, err
	}
	if cfg.MockLogs, err = intOr(getenv, "MOCK_LOGS", 50); err != nil {
		return nil, err
	}
	if cfg.MutationRateLimit, err = intOr(getenv, "MUTATION_RATE_LIMIT", 60); err != nil {
		return nil, err
	}

	lifetime, err := intOr(getenv, "SESSION_LIFETIME", 3600)
	if err != nil {
		return nil, err
	}
	cfg.SessionLifetime = time.Duration(lifetime) * time.Second

	if raw := getenv("SEED"); raw != "" {
		if cfg.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", raw, err)
		}
	} else {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
	}
	return n, nil
}

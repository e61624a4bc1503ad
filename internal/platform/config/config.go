package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// StorageBackend selects where the API stores name lists.
type StorageBackend string

const (
	StorageMemory   StorageBackend = "memory"
	StoragePostgres StorageBackend = "postgres"
)

// APIConfig configures the HTTP service. The CLI has no configuration surface.
type APIConfig struct {
	Port            string
	StorageBackend  StorageBackend
	DatabaseURL     string
	LogLevel        string
	ShutdownTimeout time.Duration
	// MaxBodyBytes caps request bodies on the sort and create endpoints.
	MaxBodyBytes int64
}

// LoadAPIConfigFromEnv reads PORT, STORAGE_BACKEND, DATABASE_URL, LOG_LEVEL and SHUTDOWN_TIMEOUT.
func LoadAPIConfigFromEnv() (APIConfig, error) {
	return loadAPIConfig(os.Getenv)
}

func loadAPIConfig(getenv func(string) string) (APIConfig, error) {
	cfg := APIConfig{
		Port:            "8080",
		StorageBackend:  StorageMemory,
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20,
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	switch b := StorageBackend(strings.ToLower(strings.TrimSpace(getenv("STORAGE_BACKEND")))); b {
	case "", StorageMemory:
		cfg.StorageBackend = StorageMemory
	case StoragePostgres:
		cfg.StorageBackend = StoragePostgres
	default:
		return APIConfig{}, fmt.Errorf("STORAGE_BACKEND must be memory or postgres, got %q", b)
	}

	cfg.DatabaseURL = strings.TrimSpace(getenv("DATABASE_URL"))
	if cfg.StorageBackend == StoragePostgres && cfg.DatabaseURL == "" {
		return APIConfig{}, fmt.Errorf("missing required env var for postgres storage: DATABASE_URL")
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return APIConfig{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

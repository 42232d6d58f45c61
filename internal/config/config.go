// Package config reads service configuration from the environment, with a
// .env file as the local-development convenience.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPAddr     string
	StoreBackend string
	PostgresDSN  string
	// KafkaBrokers empty disables event publishing entirely.
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		StoreBackend: getenv("STORE_BACKEND", BackendMemory),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("STORE_BACKEND=%s requires POSTGRES_DSN", BackendPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

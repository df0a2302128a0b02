// Package config loads process configuration from the environment, with a
// .env file honored in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Addr        string
	DatabaseURL string
	LogLevel    string
	LogSQL      bool

	TokenIssuer   string
	TokenAudience string
	SigningKey    string
	TokenTTL      time.Duration

	IngestSecret string
	HashTimeCost uint32

	CORSOrigins []string
}

// Load reads configuration from the environment. SIGNING_KEY, INGEST_SECRET
// and DATABASE_URL have no safe defaults and abort startup when absent.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getenv("ENVIRONMENT", "development"),
		Addr:          getenv("ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogSQL:        getbool("LOG_SQL", false),
		TokenIssuer:   getenv("TOKEN_ISSUER", "telemetry"),
		TokenAudience: getenv("TOKEN_AUDIENCE", "telemetry-api"),
		TokenTTL:      getdur("TOKEN_TTL", 24*time.Hour),
		HashTimeCost:  uint32(getint("HASH_TIME_COST", 0)),
		CORSOrigins:   getlist("CORS_ORIGINS"),
	}

	var err error
	if cfg.DatabaseURL, err = must("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.SigningKey, err = must("SIGNING_KEY"); err != nil {
		return nil, err
	}
	if cfg.IngestSecret, err = must("INGEST_SECRET"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getlist(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func must(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}

package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/procurehub/eproc/pkg/jwtx"
)

// ErrNoJWTSecret reports a missing EPROC_JWT_SECRET. The service refuses to
// start without one rather than falling back to a baked-in value.
var ErrNoJWTSecret = errors.New("EPROC_JWT_SECRET must be set")

type Config struct {
	JWTSecret string        // Required: HS256 signing secret
	Issuer    string        // Optional: issuer claim for tokens (default: eproc-accounts)
	TokenTTL  time.Duration // Optional: token lifetime (default: 24h)

	DBDriver   string // Optional: database driver (sqlite, postgres) (default: sqlite)
	DBDSN      string // Optional: DSN, a file path for sqlite (default: ./accounts.db)
	BcryptCost int    // Optional: bcrypt work factor (default: 12)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret: os.Getenv("EPROC_JWT_SECRET"),
		Issuer:    getEnvOrDefault("EPROC_ISSUER", "eproc-accounts"),
		TokenTTL:  getEnvDurationOrDefault("EPROC_TOKEN_TTL", jwtx.DefaultTokenTTL),

		DBDriver:   getEnvOrDefault("EPROC_DB_DRIVER", "sqlite"),
		DBDSN:      getEnvOrDefault("EPROC_DB_DSN", "accounts.db"),
		BcryptCost: getEnvIntOrDefault("EPROC_BCRYPT_COST", 12),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrNoJWTSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as hours, which is what deployment configs
	// tended to set.
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}

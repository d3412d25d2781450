package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds process-wide configuration, loaded once at startup and
// immutable thereafter.
type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	SecureCookie bool
}

const defaultSecret = "dev-secret-change-in-production"

// Load reads configuration from the environment. The session token expiry
// defaults to 24 hours and can be overridden with JWT_EXPIRY (a Go duration
// string, e.g. "1h").
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/hirebase?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", defaultSecret),
		JWTExpiry:   24 * time.Hour,
	}

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("invalid JWT_EXPIRY", "value", v, "error", err)
			os.Exit(1)
		}
		cfg.JWTExpiry = d
	}

	// The session cookie is only allowed over plain HTTP in local development;
	// every other deployment is assumed TLS-terminated.
	cfg.SecureCookie = cfg.Env != "development"

	if cfg.Env == "production" && cfg.JWTSecret == defaultSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort             = "8080"
	defaultJWTAccessTTL     = "24h"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultProfitMargin     = "20"
	defaultArchiveAfterDays = "90"
	defaultArchiveCronSpec  = "0 3 * * *"
	defaultDatabaseURL      = "estimateai.db"
	defaultMailerMode       = "log"
)

// RuntimeConfig carries everything cmd/api needs from the environment.
type RuntimeConfig struct {
	AppEnv              string
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAccessTTL        time.Duration
	DefaultProfitMargin float64
	ArchiveAfterDays    int
	ArchiveCronSpec     string
	ArchiverEnabled     bool
	MailerMode          string
	AIEndpoint          string
	AIAPIKey            string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.DefaultProfitMargin, err = parseFloatEnv("DEFAULT_PROFIT_MARGIN", defaultProfitMargin)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultProfitMargin < 0 || cfg.DefaultProfitMargin > 100 {
		return nil, fmt.Errorf("DEFAULT_PROFIT_MARGIN must be between 0 and 100, got %v", cfg.DefaultProfitMargin)
	}

	cfg.ArchiveAfterDays, err = parseIntEnv("ARCHIVE_AFTER_DAYS", defaultArchiveAfterDays)
	if err != nil {
		return nil, err
	}
	cfg.ArchiveCronSpec = strings.TrimSpace(getEnv("ARCHIVE_CRON_SPEC", defaultArchiveCronSpec))
	cfg.ArchiverEnabled = parseBoolEnv("ARCHIVER_ENABLED", "true")

	cfg.MailerMode = strings.ToLower(strings.TrimSpace(getEnv("MAILER", defaultMailerMode)))
	if cfg.MailerMode != "log" && cfg.MailerMode != "off" {
		return nil, fmt.Errorf("MAILER must be log or off, got %q", cfg.MailerMode)
	}

	cfg.AIEndpoint = strings.TrimSpace(os.Getenv("AI_ENDPOINT"))
	cfg.AIAPIKey = strings.TrimSpace(os.Getenv("AI_API_KEY"))

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseFloatEnv(key, fallback string) (float64, error) {
	raw := getEnv(key, fallback)
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseBoolEnv(key, fallback string) bool {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, fallback)))
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}

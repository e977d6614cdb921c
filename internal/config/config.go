package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8000"
	defaultSessionTTL    = "24h"
	defaultSecretKey     = "change-me-secret-key"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
	defaultUserUsername  = "user"
	defaultUserPassword  = "user"
	defaultLogLevel      = "info"
	defaultLogFile       = "logs/app.log"
	defaultCORSOrigins   = "*"
	defaultCookieSecure  = "false"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	SecretKey    string
	SessionTTL   time.Duration
	CookieSecure bool

	AdminUsername string
	AdminPassword string
	UserUsername  string
	UserPassword  string

	LogLevel string
	LogFile  string

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.SecretKey = strings.TrimSpace(getEnv("SECRET_KEY", defaultSecretKey))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)

	cfg.AdminUsername = strings.TrimSpace(getEnv("ADMIN_USERNAME", defaultAdminUsername))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)
	cfg.UserUsername = strings.TrimSpace(getEnv("USER_USERNAME", defaultUserUsername))
	cfg.UserPassword = getEnv("USER_PASSWORD", defaultUserPassword)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFile = strings.TrimSpace(getEnv("LOG_FILE", defaultLogFile))

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s, port=%s, session ttl=%s", cfg.AppEnv, cfg.Port, cfg.SessionTTL)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.AdminUsername == "" || cfg.UserUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME and USER_USERNAME must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.SecretKey, defaultSecretKey) {
			return fmt.Errorf("in prod/release SECRET_KEY must be set and not default")
		}
		if cfg.AdminPassword == defaultAdminPassword {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must not be default")
		}
		if cfg.UserPassword == defaultUserPassword {
			return fmt.Errorf("in prod/release USER_PASSWORD must not be default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

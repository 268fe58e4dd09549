// Package config loads process configuration from the environment, with a
// .env file picked up when present.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultDBFile     = "restaurant.db"
	defaultCORSOrigin = "http://localhost:5173"
	defaultJWTSecret  = "change-me-in-production"
	defaultAdminUser  = "admin"
	defaultSMTPServer = "smtp.gmail.com"
	defaultSMTPPort   = "587"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

type Config struct {
	Addr       string
	DBPath     string
	CORSOrigin string

	JWTSecret     string
	AdminUser     string
	AdminPassword string // empty disables login entirely

	SMTPServer    string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPRecipient string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if any) and the environment. Missing values fall back to
// defaults suitable for a local single-operator install.
func Load(logger *slog.Logger) Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment only")
	}

	cfg := Config{
		Addr:          get("ADDR", defaultAddr),
		DBPath:        get("DB_PATH", defaultDBPath()),
		CORSOrigin:    get("CORS_ORIGIN", defaultCORSOrigin),
		JWTSecret:     get("JWT_SECRET", defaultJWTSecret),
		AdminUser:     get("ADMIN_USER", defaultAdminUser),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		SMTPServer:    get("SMTP_SERVER", defaultSMTPServer),
		SMTPPort:      get("SMTP_PORT", defaultSMTPPort),
		SMTPUsername:  get("SMTP_USERNAME", ""),
		SMTPPassword:  get("SMTP_PASSWORD", ""),
		SMTPRecipient: get("SMTP_RECIPIENT", ""),
		LogLevel:      get("LOG_LEVEL", defaultLogLevel),
		LogFormat:     get("LOG_FORMAT", defaultLogFormat),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		logger.Warn("JWT_SECRET is unset, using the built-in development secret")
	}

	return cfg
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultDBPath keeps the store next to the binary's working directory under
// a data/ folder so a portable install stays self-contained.
func defaultDBPath() string {
	return filepath.Join("data", defaultDBFile)
}

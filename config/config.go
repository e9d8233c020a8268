package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthModeToken = "token"
	AuthModeJWT   = "jwt"
)

// Config carries everything the service needs at construction time. Nothing
// reads the environment after Load returns, so tests can build a Config by
// hand and inject it per-case.
type Config struct {
	MongoURI     string
	DatabaseName string

	Port     string
	LogMode  string
	AuthMode string
	// Secret is the shared bearer token in token mode, or the HMAC signing
	// key in jwt mode.
	Secret string

	AllowedOrigins []string
	RequestTimeout time.Duration
	AllowRereview  bool
}

// Load reads the environment, after best-effort loading of a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("MONGO_DATABASE", "kpi_report"),
		Port:           getEnv("PORT", "8081"),
		LogMode:        getEnv("LOG_MODE", "dev"),
		AuthMode:       getEnv("AUTH_MODE", AuthModeToken),
		Secret:         os.Getenv("API_SECRET"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		RequestTimeout: 10 * time.Second,
		AllowRereview:  false,
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %v", err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("ALLOW_REREVIEW"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ALLOW_REREVIEW: %v", err)
		}
		cfg.AllowRereview = allow
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("Mongo URI is required")
	}
	if c.Secret == "" {
		return fmt.Errorf("API_SECRET is required")
	}
	if c.AuthMode != AuthModeToken && c.AuthMode != AuthModeJWT {
		return fmt.Errorf("auth mode must be %q or %q", AuthModeToken, AuthModeJWT)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config stores all configuration of the application, resolved once at
// startup and passed explicitly to whatever needs it.
type Config struct {
	// Database
	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	// Server
	ServerPort  string
	CORSOrigins []string

	// JWT Authentication
	JWTSecretKey string
	TokenExpiry  time.Duration
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load builds the Config from environment variables. The JWT secret has no
// sane default and is required.
func Load() (*Config, error) {
	secret := strings.TrimSpace(os.Getenv("ACCESS_TOKEN_SECRET"))
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is not set")
	}

	expiry := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("ACCESS_TOKEN_EXPIRY")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRY %q: %w", raw, err)
		}
		expiry = d
	}

	cfg := &Config{
		DBHost:       envOrDefault("DB_HOST", "127.0.0.1"),
		DBUser:       envOrDefault("DB_USER", "root"),
		DBPass:       os.Getenv("DB_PASS"),
		DBName:       envOrDefault("DB_NAME", "hostel_db"),
		DBPort:       envOrDefault("DB_PORT", "3306"),
		ServerPort:   envOrDefault("PORT", "8000"),
		CORSOrigins:  parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		JWTSecretKey: secret,
		TokenExpiry:  expiry,
	}
	return cfg, nil
}

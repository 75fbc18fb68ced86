// Package config loads process-wide configuration from environment variables.
// The resulting Config is built once in main and passed into constructors;
// no other package reads the environment for these settings.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTokenTTLMinutes is the default lifetime of interactive access tokens.
	DefaultTokenTTLMinutes = 1440
	// DefaultMLAPITimeout bounds the whole request to the external forecast API.
	DefaultMLAPITimeout = 10 * time.Second
)

// Config holds all runtime settings for the service.
type Config struct {
	ListenAddr    string        // HTTP listen address (e.g. ":8080")
	DatabaseURL   string        // Postgres DSN; empty selects the local SQLite fallback
	RunMigrations bool          // run gorm AutoMigrate on startup
	JWTSecret     string        // HMAC signing secret for access tokens
	TokenTTL      time.Duration // access token lifetime
	MLAPIURL      string        // external forecast API base URL; empty disables the relay
	MLAPITimeout  time.Duration // HTTP timeout for the forecast relay
	CORSOrigins   []string      // allowed CORS origins
	RedisHost     string        // Redis host; empty disables caching
	RedisPort     string
	RedisPassword string
}

// Load builds a Config from environment variables, applying defaults
// where a variable is unset.
func Load() Config {
	cfg := Config{
		ListenAddr:    getenv("ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(getenvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMinutes)) * time.Minute,
		MLAPIURL:      os.Getenv("ML_API_URL"),
		MLAPITimeout:  DefaultMLAPITimeout,
		CORSOrigins:   splitOrigins(getenv("CORS_ORIGINS", "*")),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	return cfg
}

// MLConfigured reports whether an external forecast API has been configured.
func (c Config) MLConfigured() bool {
	return c.MLAPIURL != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}

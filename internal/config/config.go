// Package config loads process configuration from the environment once at
// startup. Missing secrets are a fatal startup error, not something to
// recover from at request time.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything main needs to wire the process.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
}

// Load reads configuration from the environment. MONGODB_URI and
// JWT_SECRET are required.
func Load() (*Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &Config{
		Port:         getenv("PORT", "8080"),
		MongoURI:     uri,
		MongoDB:      getenv("MONGODB_DB", "rentify"),
		JWTSecret:    secret,
		TokenTTL:     24 * time.Hour,
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

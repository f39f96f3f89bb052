package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the runtime configuration for the API process. Values come
// from the environment; optional keys fall back to development defaults.
type Config struct {
	MongoURL     string
	DBName       string
	JWTSecret    string
	CORSOrigins  []string
	Port         string
	OpenAIAPIKey string
}

// Load reads configuration from the environment. MONGO_URL and JWT_SECRET
// are required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		MongoURL:     os.Getenv("MONGO_URL"),
		DBName:       getEnv("DB_NAME", "rentify"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "*")),
		Port:         getEnv("PORT", "8000"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("config: MONGO_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required")
	}
	return cfg, nil
}

// AllowAnyOrigin reports whether the CORS allowlist is the permissive default.
func (c Config) AllowAnyOrigin() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

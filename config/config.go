// Package config loads application configuration from environment variables,
// with *_FILE secret-file fallbacks for the sensitive values.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/gemini"
)

const (
	// DefaultRecipeRating fills in when generated recipe JSON omits the
	// rating or supplies a non-numeric one.
	DefaultRecipeRating float32 = 4.0
	// DefaultSuggestionLimit caps pantry autocomplete suggestions.
	DefaultSuggestionLimit = 5
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Gemini configuration. An empty API key is tolerated here; the client
	// turns it into a handled error on the first call.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// JWT configuration
	JWTSecret string

	// Redis configuration (optional, rate limiting only)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Tunables
	DefaultRecipeRating float32
	SuggestionLimit     int
}

// Load creates a Config from the environment.
func Load() *Config {
	cfg := &Config{
		ServerHost:          getenv("SERVER_HOST", ""),
		ServerPort:          getenv("SERVER_PORT", "8080"),
		GeminiAPIKey:        getSecret("GEMINI_API_KEY"),
		GeminiModel:         getenv("GEMINI_MODEL", gemini.DefaultModel),
		GeminiBaseURL:       getenv("GEMINI_API_URL", gemini.DefaultBaseURL),
		JWTSecret:           getSecret("JWT_SECRET"),
		RedisHost:           os.Getenv("REDIS_HOST"),
		RedisPort:           getenv("REDIS_PORT", "6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		DefaultRecipeRating: DefaultRecipeRating,
		SuggestionLimit:     DefaultSuggestionLimit,
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}
	if ratingStr := os.Getenv("DEFAULT_RECIPE_RATING"); ratingStr != "" {
		if rating, err := strconv.ParseFloat(ratingStr, 32); err == nil {
			cfg.DefaultRecipeRating = float32(rating)
		}
	}
	if limitStr := os.Getenv("SUGGESTION_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			cfg.SuggestionLimit = limit
		}
	}

	return cfg
}

// getSecret reads NAME from the environment, falling back to the contents of
// the file named by NAME_FILE.
func getSecret(name string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	if path := os.Getenv(name + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// ABOUTME: Configuration loader for the configurator backend
// ABOUTME: Loads settings from environment variables (and an optional .env file) with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, matrix cache lifetime
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitWrite   int  // Requests per minute for lead-capture endpoints (default: 10)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 100)

	// Engine
	MatrixConcurrency int    // goroutines used to build the recommendation matrix
	TuningFile        string // optional YAML override for the engine tuning table

	// Lead capture
	InquiryDBPath string
	LeadsAPIToken string // bearer token for GET /api/v1/leads (empty = listing disabled)
}

// LoadDotEnv loads variables from path into the environment without overriding
// anything already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitWrite:   getEnvInt("RATE_LIMIT_WRITE", 10),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),

		MatrixConcurrency: getEnvInt("MATRIX_CONCURRENCY", 8),
		TuningFile:        os.Getenv("ENGINE_TUNING_FILE"),

		InquiryDBPath: getEnv("INQUIRY_DB_PATH", "inquiries.db"),
		LeadsAPIToken: os.Getenv("LEADS_API_TOKEN"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}
	if cfg.MatrixConcurrency < 1 || cfg.MatrixConcurrency > 256 {
		return nil, fmt.Errorf("MATRIX_CONCURRENCY must be between 1 and 256, got %d", cfg.MatrixConcurrency)
	}

	if cfg.LeadsAPIToken != "" && len(cfg.LeadsAPIToken) < 16 {
		return nil, fmt.Errorf("LEADS_API_TOKEN must be at least 16 characters")
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_WRITE", cfg.RateLimitWrite},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
